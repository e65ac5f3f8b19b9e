package combine

import (
	"time"

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
	"github.com/goto/chronoset/internal/lib/interval"
)

type combineCommand struct {
	logger         log.Logger
	configFilePath string
	documentPath   string
	outputFormat   string

	setName string
	meeting bool
	into    string

	clientConfig *config.ClientConfig
	document     *model.Document
}

// NewCombineCommand initializes command to merge the intervals of a set
func NewCombineCommand() *cobra.Command {
	combine := &combineCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge overlapping intervals of a set",
		Long: heredoc.Doc(`
			Sorts the intervals of a set and merges the ones that overlap.
			Intervals that only touch are merged too, unless --meeting is given.
		`),
		Example: heredoc.Doc(`
			$ chronoset combine -f availability.yaml -s alice
			$ chronoset combine -f availability.yaml -s alice --meeting --into alice-merged
		`),
		RunE:    combine.RunE,
		PreRunE: combine.PreRunE,
	}

	combine.injectFlags(cmd)
	internal.MarkFlagsRequired(cmd, []string{"file", "set"})
	return cmd
}

func (c *combineCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&c.documentPath, "file", "f", "", "File path of the interval document")
	cmd.Flags().StringVarP(&c.outputFormat, "output", "o", "", "Output format: table, yaml or json")

	cmd.Flags().StringVarP(&c.setName, "set", "s", "", "Name of the set to combine")
	cmd.Flags().BoolVar(&c.meeting, "meeting", false, "Keep intervals that only touch apart")
	cmd.Flags().StringVar(&c.into, "into", "", "Store the result in the document as a set with this name")
}

func (c *combineCommand) PreRunE(_ *cobra.Command, _ []string) error {
	var err error
	c.clientConfig, err = internal.LoadConfig(c.configFilePath)
	if err != nil {
		return err
	}
	c.outputFormat = utils.GetFirstNonEmpty(c.outputFormat, string(c.clientConfig.Output.Format))

	c.document, err = internal.LoadDocument(c.documentPath)
	return err
}

func (c *combineCommand) RunE(cmd *cobra.Command, _ []string) error {
	availability := service.NewAvailabilityService(logger.NewServiceLogger(c.clientConfig.Log, cmd.ErrOrStderr()), c.document)

	merged, err := availability.Merge(c.setName, c.meeting)
	if err != nil {
		return err
	}

	if c.into != "" {
		if err := c.store(merged); err != nil {
			return err
		}
		c.logger.Info("stored %d intervals as set %s in %s", len(merged), c.into, c.document.Path)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(c.outputFormat))
	return printer.Print(output.Intervals(merged))
}

func (c *combineCommand) store(merged []interval.Interval[time.Time]) error {
	c.document.PutSet(model.NewSetSpec(c.into, merged))
	return internal.SaveDocument(c.document)
}
