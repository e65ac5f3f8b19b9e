package playground

import (
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/playground/daily"
)

// NewPlaygroundCommand initializes command for the interactive playgrounds
func NewPlaygroundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Interactive playgrounds to explore how windows behave",
	}
	cmd.AddCommand(daily.NewCommand())
	return cmd
}
