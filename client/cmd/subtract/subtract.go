package subtract

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	"github.com/goto/chronoset/client/cmd/internal/utils"
	"github.com/goto/chronoset/client/local/model"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/core/coverage/service"
)

type subtractCommand struct {
	logger         log.Logger
	configFilePath string
	documentPath   string
	outputFormat   string

	baseSet string
	busySet string

	clientConfig *config.ClientConfig
	document     *model.Document
}

// NewSubtractCommand initializes command to remove one set from another
func NewSubtractCommand() *cobra.Command {
	subtract := &subtractCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "subtract",
		Short: "Remove the intervals of one set from another",
		Long: heredoc.Doc(`
			Prints what remains of the base set once every interval of the
			subtracted set is cut out, such as free time left in office hours.
		`),
		Example: "chronoset subtract -f availability.yaml --base office --subtract meetings",
		RunE:    subtract.RunE,
		PreRunE: subtract.PreRunE,
	}

	subtract.injectFlags(cmd)
	internal.MarkFlagsRequired(cmd, []string{"file", "base", "subtract"})
	return cmd
}

func (s *subtractCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&s.documentPath, "file", "f", "", "File path of the interval document")
	cmd.Flags().StringVarP(&s.outputFormat, "output", "o", "", "Output format: table, yaml or json")

	cmd.Flags().StringVar(&s.baseSet, "base", "", "Name of the set to subtract from")
	cmd.Flags().StringVar(&s.busySet, "subtract", "", "Name of the set to subtract")
}

func (s *subtractCommand) PreRunE(_ *cobra.Command, _ []string) error {
	var err error
	s.clientConfig, err = internal.LoadConfig(s.configFilePath)
	if err != nil {
		return err
	}
	s.outputFormat = utils.GetFirstNonEmpty(s.outputFormat, string(s.clientConfig.Output.Format))

	s.document, err = internal.LoadDocument(s.documentPath)
	return err
}

func (s *subtractCommand) RunE(cmd *cobra.Command, _ []string) error {
	availability := service.NewAvailabilityService(logger.NewServiceLogger(s.clientConfig.Log, cmd.ErrOrStderr()), s.document)
	free, err := availability.Free(s.baseSet, s.busySet)
	if err != nil {
		return err
	}
	if len(free) == 0 {
		s.logger.Warn("nothing of %s remains after subtracting %s", s.baseSet, s.busySet)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(s.outputFormat))
	return printer.Print(output.Intervals(free))
}
