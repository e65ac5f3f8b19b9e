package daily

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// NewDailyCommand initializes command for time-of-day windows that repeat every day
func NewDailyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Work with time-of-day windows repeating every day",
		Long: heredoc.Doc(`
			A daily window is written as HH:MM-HH:MM. A window ending before it
			starts wraps past midnight, and a window ending where it starts
			covers the whole day. Windows can also be referred to by the name
			they have in an interval document.
		`),
		Example: heredoc.Doc(`
			$ chronoset daily contains --window 20:00-08:00 07:30
			$ chronoset daily overlap --window 20:00-10:00 --window 08:00-22:00
			$ chronoset daily materialize -f availability.yaml --window night-shift --from 2024-03-30 --to 2024-04-02
		`),
	}

	cmd.AddCommand(
		newContainsCommand(),
		newOverlapCommand(),
		newMaterializeCommand(),
	)
	return cmd
}
