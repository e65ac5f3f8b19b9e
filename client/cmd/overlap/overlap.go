package overlap

import (
	"errors"

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

type overlapCommand struct {
	logger         log.Logger
	configFilePath string
	documentPath   string
	outputFormat   string

	setNames     []string
	excludedSets []string
	minimum      int
	all          bool

	clientConfig *config.ClientConfig
	document     *model.Document
}

// NewOverlapCommand initializes command to find stretches shared by sets
func NewOverlapCommand() *cobra.Command {
	overlap := &overlapCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Find stretches shared by several sets",
		Long: heredoc.Doc(`
			Finds the stretches covered by at least --minimum of the given sets,
			or by every set when --all is given. Every set of the document is used
			when no set is named. The minimum falls back to overlap.minimum of the
			client configuration.
		`),
		Example: heredoc.Doc(`
			$ chronoset overlap -f availability.yaml --all
			$ chronoset overlap -f availability.yaml -s alice -s bob -s carol --minimum 2
		`),
		RunE:    overlap.RunE,
		PreRunE: overlap.PreRunE,
	}

	overlap.injectFlags(cmd)
	internal.MarkFlagsRequired(cmd, []string{"file"})
	return cmd
}

func (o *overlapCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&o.documentPath, "file", "f", "", "File path of the interval document")
	cmd.Flags().StringVarP(&o.outputFormat, "output", "o", "", "Output format: table, yaml or json")

	cmd.Flags().StringSliceVarP(&o.setNames, "set", "s", nil, "Names of the sets to overlap")
	cmd.Flags().StringSliceVar(&o.excludedSets, "exclude", nil, "Names of the sets to leave out")
	cmd.Flags().IntVar(&o.minimum, "minimum", 0, "Minimum number of sets covering a stretch")
	cmd.Flags().BoolVar(&o.all, "all", false, "Only keep stretches covered by every set")
}

func (o *overlapCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	if o.all && cmd.Flags().Changed("minimum") {
		return errors.New("--all and --minimum can not be used together")
	}

	var err error
	o.clientConfig, err = internal.LoadConfig(o.configFilePath)
	if err != nil {
		return err
	}
	o.outputFormat = utils.GetFirstNonEmpty(o.outputFormat, string(o.clientConfig.Output.Format))
	if !cmd.Flags().Changed("minimum") {
		o.minimum = o.clientConfig.Overlap.Minimum
	}
	if o.all {
		o.minimum = 0
	}

	o.document, err = internal.LoadDocument(o.documentPath)
	return err
}

func (o *overlapCommand) RunE(cmd *cobra.Command, _ []string) error {
	names := o.setNames
	if len(names) == 0 {
		names = o.document.SetNames()
	}
	names = utils.RemoveFromStringArray(utils.GetDistinctStrings(names), o.excludedSets)

	availability := service.NewAvailabilityService(logger.NewServiceLogger(o.clientConfig.Log, cmd.ErrOrStderr()), o.document)
	common, err := availability.Common(names, o.minimum)
	if err != nil {
		return err
	}
	if len(common) == 0 {
		o.logger.Warn("no stretch is shared by the sets %v", names)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(o.outputFormat))
	return printer.Print(output.Intervals(common))
}
