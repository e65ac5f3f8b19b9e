package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goto/chronoset/config"
)

// LoadConfig loads the client configuration. Defaults are used when no file is found.
func LoadConfig(configFilePath string) (*config.ClientConfig, error) {
	conf, err := config.LoadClientConfig(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("unable to load client config: %w", err)
	}
	return conf, nil
}

func MarkFlagsRequired(cmd *cobra.Command, flagNames []string) {
	for _, n := range flagNames {
		cmd.MarkFlagRequired(n)
	}
}
