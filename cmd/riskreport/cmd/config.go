package cmd

import (
	"fmt"

	"github.com/rustyeddy/riskreport/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage riskreport configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  riskreport config init --output risk.yaml
  riskreport config validate --file risk.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with default settings.

Example:
  riskreport config init --output risk.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  riskreport config validate --file risk.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configInitPrices   string
	configInitReport   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "riskreport.yaml", "output config file path")
	configInitCmd.Flags().StringVar(&configInitPrices, "prices", "prices.csv", "price file recorded in the config")
	configInitCmd.Flags().StringVar(&configInitReport, "report", "risk.csv", "report file recorded in the config")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.Input.Path = configInitPrices
	cfg.Report.Path = configInitReport
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created default configuration: %s\n", configInitOutput)
	fmt.Fprintln(out, "\nEdit the file and run with:")
	fmt.Fprintf(out, "  riskreport report --config %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Configuration valid: %s\n", configValidatePath)
	fmt.Fprintf(out, "  Input:  %s (%s, %s, %s)\n", cfg.Input.Path, cfg.Input.DateColumn, cfg.Input.TickerColumn, cfg.Input.CloseColumn)
	fmt.Fprintf(out, "  Risk:   alpha %g, %d trading days, insufficient=%s\n", cfg.Risk.Alpha, cfg.Risk.TradingDays, cfg.Risk.Insufficient)
	fmt.Fprintf(out, "  Report: %s (%s)\n", cfg.Report.Path, cfg.Report.Format)
	return nil
}
