package elapsed

import (
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	"github.com/goto/chronoset/client/cmd/internal/utils"
	lerrors "github.com/goto/chronoset/client/local/errors"
	"github.com/goto/chronoset/client/local/model"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/core/coverage/service"
)

type elapsedCommand struct {
	logger         log.Logger
	configFilePath string
	documentPath   string
	outputFormat   string

	setName  string
	duration time.Duration

	clientConfig *config.ClientConfig
	document     *model.Document
}

type result struct {
	Set      string     `json:"set"          yaml:"set"`
	Duration string     `json:"duration"     yaml:"duration"`
	Reached  bool       `json:"reached"      yaml:"reached"`
	At       *time.Time `json:"at,omitempty" yaml:"at,omitempty"`
}

// NewElapsedCommand initializes command to find when a set accumulates a duration
func NewElapsedCommand() *cobra.Command {
	elapsed := &elapsedCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "elapsed",
		Short: "Find when the intervals of a set have accumulated a duration",
		Long: heredoc.Doc(`
			Walks the intervals of a set in time order, counting time covered by
			several intervals once per interval, and prints the moment the total
			reaches the given duration. Exits with a warning code when the set
			never accumulates that much.
		`),
		Example: "chronoset elapsed -f availability.yaml -s shifts --duration 20h",
		RunE:    elapsed.RunE,
		PreRunE: elapsed.PreRunE,
	}

	elapsed.injectFlags(cmd)
	internal.MarkFlagsRequired(cmd, []string{"file", "set", "duration"})
	return cmd
}

func (e *elapsedCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&e.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&e.documentPath, "file", "f", "", "File path of the interval document")
	cmd.Flags().StringVarP(&e.outputFormat, "output", "o", "", "Output format: table, yaml or json")

	cmd.Flags().StringVarP(&e.setName, "set", "s", "", "Name of the set")
	cmd.Flags().DurationVarP(&e.duration, "duration", "d", 0, "Duration to accumulate, such as 20h or 90m")
}

func (e *elapsedCommand) PreRunE(_ *cobra.Command, _ []string) error {
	var err error
	e.clientConfig, err = internal.LoadConfig(e.configFilePath)
	if err != nil {
		return err
	}
	e.outputFormat = utils.GetFirstNonEmpty(e.outputFormat, string(e.clientConfig.Output.Format))

	e.document, err = internal.LoadDocument(e.documentPath)
	return err
}

func (e *elapsedCommand) RunE(cmd *cobra.Command, _ []string) error {
	availability := service.NewAvailabilityService(logger.NewServiceLogger(e.clientConfig.Log, cmd.ErrOrStderr()), e.document)
	at, reached, err := availability.ElapsedAt(e.setName, e.duration)
	if err != nil {
		return err
	}

	res := result{
		Set:      e.setName,
		Duration: e.duration.String(),
		Reached:  reached,
	}
	row := []string{res.Set, res.Duration, "never"}
	if reached {
		res.At = &at
		row[2] = at.Format(time.RFC3339)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(e.outputFormat))
	if err := printer.Print(output.Result{
		Header: []string{"Set", "Duration", "Reached At"},
		Rows:   [][]string{row},
		Value:  res,
	}); err != nil {
		return err
	}

	if !reached {
		return lerrors.NewWarnErrorf("set %s never accumulates %s", e.setName, e.duration)
	}
	return nil
}
