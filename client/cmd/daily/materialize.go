package daily

import (
	"errors"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	"github.com/goto/chronoset/client/cmd/internal/utils"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/core/coverage/service"
	"github.com/goto/chronoset/internal/lib/interval"
)

type materializeCommand struct {
	logger log.Logger
	sharedFlags

	window string
	from   string
	to     string
	local  bool
}

type localOccurrence struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

func newMaterializeCommand() *cobra.Command {
	materialize := &materializeCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "materialize",
		Short: "List the occurrences of a daily window within a range",
		Long: "Occurrences are computed in the window location, so a day shortened or lengthened " +
			"by a daylight saving change yields a shorter or longer occurrence. With --local the " +
			"occurrences are listed as wall clock date-times for every day from --from until --to.",
		Example: "chronoset daily materialize --window 20:00-08:00 --location Europe/London --from 2024-03-30 --to 2024-04-01",
		RunE:    materialize.RunE,
		PreRunE: materialize.PreRunE,
	}

	materialize.sharedFlags.inject(cmd)
	cmd.Flags().StringVarP(&materialize.window, "window", "w", "", "Window as HH:MM-HH:MM or its name in the document")
	cmd.Flags().StringVar(&materialize.from, "from", "", "Range start, RFC3339 or a date read in the window location")
	cmd.Flags().StringVar(&materialize.to, "to", "", "Range end, RFC3339 or a date read in the window location")
	cmd.Flags().BoolVar(&materialize.local, "local", false, "List wall clock occurrences without a location")
	internal.MarkFlagsRequired(cmd, []string{"window", "from", "to"})
	return cmd
}

func (m *materializeCommand) PreRunE(_ *cobra.Command, _ []string) error {
	return m.load()
}

func (m *materializeCommand) RunE(cmd *cobra.Command, _ []string) error {
	from, err := utils.ParseTime(m.from, m.loc)
	if err != nil {
		return err
	}
	to, err := utils.ParseTime(m.to, m.loc)
	if err != nil {
		return err
	}
	rng, err := interval.New(from, to)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(m.outputFormat))
	if m.local {
		result, err := m.materializeLocal(rng)
		if err != nil {
			return err
		}
		return printer.Print(result)
	}

	availability := service.NewAvailabilityService(logger.NewServiceLogger(m.clientConfig.Log, cmd.ErrOrStderr()), m.repository)
	occurrences, err := availability.DailyOccurrences(m.window, m.loc, rng)
	if err != nil {
		return err
	}
	m.logger.Debug("%d occurrences of %s in %s", len(occurrences), m.window, m.loc)
	return printer.Print(output.Intervals(occurrences))
}

func (m *materializeCommand) materializeLocal(rng interval.Interval[time.Time]) (output.Result, error) {
	in, err := m.repository.GetWindow(m.window)
	if err != nil {
		return output.Result{}, err
	}

	first := civil.DateOf(rng.Start().In(m.loc))
	last := civil.DateOf(rng.End().In(m.loc))
	days := last.DaysSince(first)
	if days <= 0 {
		return output.Result{}, errors.New("range must span at least one day for local occurrences")
	}

	occurrences := slices.Collect(in.MaterializeLocal(first, days))
	values := make([]localOccurrence, 0, len(occurrences))
	rows := make([][]string, 0, len(occurrences))
	for _, o := range occurrences {
		values = append(values, localOccurrence{Start: o.Start().String(), End: o.End().String()})
		rows = append(rows, []string{o.Start().String(), o.End().String()})
	}
	return output.Result{
		Header: []string{"Start", "End"},
		Rows:   rows,
		Value:  values,
	}, nil
}
