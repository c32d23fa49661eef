package cmd

import (
	"fmt"

	"github.com/rustyeddy/riskreport/config"
	"github.com/rustyeddy/riskreport/internal/logger"
	"github.com/rustyeddy/riskreport/pipeline"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute volatility and VaR for every security in a price file",
	Long: `Load closing prices, derive daily log returns per security and write
annualized volatility and historical VaR to the output file.

The input needs a header row with Date, Ticker and Close columns (the names
can be changed with --date-col, --ticker-col and --close-col). Rows need
not be sorted.

Securities with fewer than two returns are left out of the report unless
--insufficient nan is given, in which case they are written with NaN.

Examples:
  riskreport report --prices prices.csv --output risk.csv
  riskreport report -p prices.csv -o risk.org --format org --alpha 0.01
  riskreport report --config risk.yaml`,
	RunE: runReport,
}

var (
	reportConfigPath   string
	reportPrices       string
	reportOutput       string
	reportFormat       string
	reportAlpha        float64
	reportTradingDays  int
	reportInsufficient string
	reportDateCol      string
	reportTickerCol    string
	reportCloseCol     string
	reportDelimiter    string
	reportLogLevel     string
	reportLogFormat    string
	reportQuiet        bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	d := config.Default()
	f := reportCmd.Flags()
	f.StringVarP(&reportConfigPath, "config", "c", "", "config file (yaml or json)")
	f.StringVarP(&reportPrices, "prices", "p", "", "price CSV file")
	f.StringVarP(&reportOutput, "output", "o", "", "report file to write")
	f.StringVar(&reportFormat, "format", d.Report.Format, "report format: csv or org")
	f.Float64Var(&reportAlpha, "alpha", d.Risk.Alpha, "VaR tail probability")
	f.IntVar(&reportTradingDays, "trading-days", d.Risk.TradingDays, "trading days per year")
	f.StringVar(&reportInsufficient, "insufficient", d.Risk.Insufficient, "securities with fewer than 2 returns: omit or nan")
	f.StringVar(&reportDateCol, "date-col", d.Input.DateColumn, "date column name")
	f.StringVar(&reportTickerCol, "ticker-col", d.Input.TickerColumn, "security id column name")
	f.StringVar(&reportCloseCol, "close-col", d.Input.CloseColumn, "closing price column name")
	f.StringVar(&reportDelimiter, "delimiter", d.Input.Delimiter, "input field delimiter")
	f.StringVar(&reportLogLevel, "log-level", d.Logging.Level, "log level: debug, info, warn, error")
	f.StringVar(&reportLogFormat, "log-format", d.Logging.Format, "log format: console or json")
	f.BoolVarP(&reportQuiet, "quiet", "q", false, "only print the output path")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := reportConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	runner := &pipeline.Runner{Config: cfg, Logger: log}
	res, err := runner.Run()
	if err != nil {
		return err
	}

	if reportQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Risk report saved to %s\n", res.Output)
		return nil
	}
	pipeline.PrintResult(cmd.OutOrStdout(), res)
	return nil
}

// reportConfig starts from the config file (or defaults) and applies every
// flag the user set explicitly.
func reportConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if reportConfigPath != "" {
		c, err := config.LoadFromFile(reportConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}

	f := cmd.Flags()
	if f.Changed("prices") {
		cfg.Input.Path = reportPrices
	}
	if f.Changed("output") {
		cfg.Report.Path = reportOutput
	}
	if f.Changed("format") {
		cfg.Report.Format = reportFormat
	}
	if f.Changed("alpha") {
		cfg.Risk.Alpha = reportAlpha
	}
	if f.Changed("trading-days") {
		cfg.Risk.TradingDays = reportTradingDays
	}
	if f.Changed("insufficient") {
		cfg.Risk.Insufficient = reportInsufficient
	}
	if f.Changed("date-col") {
		cfg.Input.DateColumn = reportDateCol
	}
	if f.Changed("ticker-col") {
		cfg.Input.TickerColumn = reportTickerCol
	}
	if f.Changed("close-col") {
		cfg.Input.CloseColumn = reportCloseCol
	}
	if f.Changed("delimiter") {
		cfg.Input.Delimiter = reportDelimiter
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = reportLogLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = reportLogFormat
	}
	return cfg, nil
}
