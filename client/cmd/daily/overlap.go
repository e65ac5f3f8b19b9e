package daily

import (
	"errors"

	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/core/coverage/service"
)

const windowsToOverlap = 2

type overlapCommand struct {
	logger log.Logger
	sharedFlags

	windows []string
}

type overlapPiece struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

func newOverlapCommand() *cobra.Command {
	overlap := &overlapCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:     "overlap",
		Short:   "Find the stretches of the day shared by two daily windows",
		Example: "chronoset daily overlap --window 20:00-10:00 --window 08:00-22:00",
		RunE:    overlap.RunE,
		PreRunE: overlap.PreRunE,
	}

	overlap.sharedFlags.inject(cmd)
	cmd.Flags().StringSliceVarP(&overlap.windows, "window", "w", nil, "Two windows as HH:MM-HH:MM or their names in the document")
	internal.MarkFlagsRequired(cmd, []string{"window"})
	return cmd
}

func (o *overlapCommand) PreRunE(_ *cobra.Command, _ []string) error {
	if len(o.windows) != windowsToOverlap {
		return errors.New("exactly two windows are required")
	}
	return o.load()
}

func (o *overlapCommand) RunE(cmd *cobra.Command, _ []string) error {
	availability := service.NewAvailabilityService(logger.NewServiceLogger(o.clientConfig.Log, cmd.ErrOrStderr()), o.repository)
	pieces, err := availability.DailyOverlap(o.windows[0], o.windows[1])
	if err != nil {
		return err
	}

	values := make([]overlapPiece, 0, len(pieces))
	rows := make([][]string, 0, len(pieces))
	for _, p := range pieces {
		values = append(values, overlapPiece{Start: p.Start.String(), End: p.End.String()})
		rows = append(rows, []string{p.String(), p.Shape().String(), p.Duration().String()})
	}
	if len(pieces) == 0 {
		o.logger.Warn("windows %s and %s share no time of day", o.windows[0], o.windows[1])
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(o.outputFormat))
	return printer.Print(output.Result{
		Header: []string{"Window", "Shape", "Duration"},
		Rows:   rows,
		Value:  values,
	})
}
