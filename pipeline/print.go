package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/riskreport/report"
)

// PrintResult writes a human readable run summary.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Risk Report")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	fmt.Fprintf(w, "Prices:        %s (%d rows)\n", r.Input, r.Prices)
	fmt.Fprintf(w, "Returns:       %d\n", r.Returns)
	fmt.Fprintf(w, "Securities:    %d\n", r.Securities)
	fmt.Fprintf(w, "Reported:      %d\n", len(r.Summaries))
	if len(r.Omitted) > 0 {
		fmt.Fprintf(w, "Omitted:       %s (fewer than 2 returns)\n", strings.Join(r.Omitted, ", "))
	}

	if len(r.Summaries) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%-12s %18s %12s\n", "Ticker", "AnnualVolatility", "VaR")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, s := range r.Summaries {
			fmt.Fprintf(w, "%-12s %18s %12s\n", s.Ticker, pct(s.AnnualVolatility), pct(s.VaR95))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Risk report saved to %s\n", r.Output)
}

func pct(x float64) string {
	s := report.FormatFloat(x)
	if s == "NaN" {
		return s
	}
	return fmt.Sprintf("%.2f%%", 100*x)
}
