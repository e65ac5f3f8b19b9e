package daily

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal/logger"
)

type command struct {
	log log.Logger
}

// NewCommand initializes command for daily window playground
func NewCommand() *cobra.Command {
	daily := command{log: logger.NewClientLogger()}
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Play around with two daily windows and see where they meet",
		RunE:  daily.RunE,
	}

	return cmd
}

func (j *command) RunE(_ *cobra.Command, _ []string) error {
	welcome := `
   ___  _                                    _
  / __|| |_   _ _  ___  _ _   ___  ___ ___ | |_
 | (__ | ' \ | '_|/ _ \| ' \ / _ \(_-</ -_)|  _|
  \___||_||_||_|  \___/|_||_|\___//__/\___| \__|
`

	instruction := `
                                       _________________________
Hi, this is an interactive CLI to     |  up   | : arrow up    ↑ |
play around with daily windows.       | down  | : arrow down  ↓ |
You can navigate around the           | right | : arrow right → |
available configurations with         | left  | : arrow left  ← |
the following keys                    | quit  | : q or ctrl+c   |
                                       -------------------------
`
	j.log.Info(welcome)
	j.log.Info(instruction)
	p := tea.NewProgram(newModel())
	return p.Start()
}
