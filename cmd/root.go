// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/subghz/wltrace/internal/config"
	"github.com/subghz/wltrace/internal/transceiver"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wltrace",
	Short: "wltrace - STM32WL sub-GHz radio SPI transaction analyzer",
	Long: `wltrace decodes captured SPI traffic between a host MCU and the STM32WL
sub-GHz radio transceiver into named protocol commands.

It consumes byte-transfer events exported by a logic analyzer, aggregates
them into chip-select-delimited transactions, classifies each transaction
by its leading opcode and reports the results to console or JSON Lines
sinks.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "wltrace.yml",
		"config file path")
}

// loadConfig loads the configuration file, falling back to built-in
// defaults when the default config path does not exist and the user
// did not name one explicitly.
func loadConfig() (*config.GlobalConfig, error) {
	if !rootCmd.PersistentFlags().Changed("config") {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(configFile)
}

// commandTable builds the effective command table: built-in STM32WL
// entries with config overrides merged on top.
func commandTable(cfg *config.GlobalConfig) (transceiver.CommandTable, error) {
	overrides, err := cfg.Tables.CommandOverrides()
	if err != nil {
		return nil, err
	}
	return transceiver.DefaultCommands().Merge(overrides), nil
}

// registerTable builds the effective register table.
func registerTable(cfg *config.GlobalConfig) (transceiver.RegisterTable, error) {
	overrides, err := cfg.Tables.RegisterOverrides()
	if err != nil {
		return nil, err
	}
	return transceiver.DefaultRegisters().Merge(overrides), nil
}
