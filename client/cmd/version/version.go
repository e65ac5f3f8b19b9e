package version

import (
	"runtime"

	"github.com/goto/salt/log"
	"github.com/goto/salt/version"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/config"
)

const githubRepo = "goto/chronoset"

type versionCommand struct {
	logger log.Logger

	checkUpdate bool
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "chronoset version [--check-update]",
		RunE:    v.RunE,
	}

	cmd.Flags().BoolVar(&v.checkUpdate, "check-update", v.checkUpdate, "Check whether a newer release exists")
	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info("Client: %s-%s", config.BuildVersion, config.BuildCommit)
	v.logger.Debug("Go: %s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if !v.checkUpdate {
		return nil
	}
	if updateNotice := version.UpdateNotice(config.BuildVersion, githubRepo); updateNotice != "" {
		v.logger.Info(updateNotice)
	}
	return nil
}
