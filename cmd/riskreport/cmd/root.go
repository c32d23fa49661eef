package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riskreport",
	Short: "Per-security volatility and historical VaR from closing prices",
	Long: `Riskreport reads a table of daily closing prices and writes one row of
risk figures per security:

  - annualized volatility of daily log returns
  - historical Value-at-Risk at a configurable tail probability

Example:
  riskreport report --prices prices.csv --output risk.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
