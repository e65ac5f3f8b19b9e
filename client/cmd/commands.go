package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/combine"
	"github.com/goto/chronoset/client/cmd/coverage"
	"github.com/goto/chronoset/client/cmd/daily"
	"github.com/goto/chronoset/client/cmd/elapsed"
	"github.com/goto/chronoset/client/cmd/overlap"
	"github.com/goto/chronoset/client/cmd/playground"
	"github.com/goto/chronoset/client/cmd/subtract"
	"github.com/goto/chronoset/client/cmd/version"
)

// New constructs the 'chronoset' command.
// It houses all other sub commands.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronoset <command> <subcommand> [flags]",
		Short: "Interval algebra for schedules, shifts and time windows",
		Long: heredoc.Doc(`
			Chronoset combines, intersects and subtracts sets of time intervals,
			finds when a set has accumulated a duration, works with daily
			time-of-day windows and checks how scheduled job windows cover a period.

			Sets and named daily windows are read from an interval document:

			  version: 1
			  location: Asia/Jakarta
			  sets:
			    - name: alice
			      intervals:
			        - {start: 2024-03-01T08:00:00Z, end: 2024-03-01T16:00:00Z}
			  windows:
			    - {name: night-shift, start: "20:00", end: "08:00"}
		`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
			$ chronoset overlap -f availability.yaml --all
			$ chronoset subtract -f availability.yaml --base office --subtract meetings
			$ chronoset daily contains --window 20:00-08:00 07:30
			$ chronoset coverage --schedule "0 2 * * *" --incremental --from 2024-03-01 --to 2024-03-08
		`),
	}

	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentPreRunE = disableColor

	cmd.AddCommand(
		combine.NewCombineCommand(),
		overlap.NewOverlapCommand(),
		subtract.NewSubtractCommand(),
		elapsed.NewElapsedCommand(),
		daily.NewDailyCommand(),
		coverage.NewCoverageCommand(),
		playground.NewPlaygroundCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}
