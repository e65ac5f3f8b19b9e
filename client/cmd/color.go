package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func disableColor(cmd *cobra.Command, _ []string) error {
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}
	if noColor {
		color.NoColor = true
	}
	return nil
}
