package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subghz/wltrace/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: source %s, %d sink(s)\n",
			cfg.Source.Type, len(cfg.Sinks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
