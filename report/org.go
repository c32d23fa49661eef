package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/riskreport/pkg/id"
)

// Org renders the report as an Org-mode entry: run facts in a PROPERTIES
// drawer for searching, followed by an aligned table of the summaries.
type Org struct{}

func (Org) Encode(w io.Writer, r Report) error {
	_, err := io.WriteString(w, FormatOrg(r))
	return err
}

// FormatOrg returns the Org-mode text of r.
func FormatOrg(r Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("* RISK REPORT: %s\n", orDefault(r.Source, "(source?)")))
	b.WriteString(":PROPERTIES:\n")
	if r.RunID != "" {
		b.WriteString(fmt.Sprintf(":RUN_ID:       %s\n", r.RunID))
		if t, err := id.Time(r.RunID); err == nil {
			b.WriteString(fmt.Sprintf(":CREATED:      [%s]\n", t.Format("2006-01-02 Mon 15:04")))
		}
	}
	b.WriteString(fmt.Sprintf(":SOURCE:       %s\n", orDefault(r.Source, "(source?)")))
	b.WriteString(fmt.Sprintf(":ALPHA:        %s\n", FormatFloat(r.Options.Alpha)))
	b.WriteString(fmt.Sprintf(":CONFIDENCE:   %.2f%%\n", 100*(1-r.Options.Alpha)))
	b.WriteString(fmt.Sprintf(":TRADING_DAYS: %d\n", r.Options.TradingDays))
	b.WriteString(fmt.Sprintf(":SECURITIES:   %d\n", len(r.Summaries)))
	b.WriteString(":END:\n\n")

	rows := make([][]string, 0, len(r.Summaries)+1)
	rows = append(rows, Header)
	for _, s := range r.Summaries {
		rows = append(rows, []string{s.Ticker, FormatFloat(s.AnnualVolatility), FormatFloat(s.VaR95)})
	}
	writeOrgTable(&b, rows)

	return b.String()
}

// writeOrgTable pads every column to its widest cell, with a rule under the header row.
func writeOrgTable(b *strings.Builder, rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for n, row := range rows {
		b.WriteString("|")
		for i, cell := range row {
			b.WriteString(" " + cell + strings.Repeat(" ", widths[i]-len(cell)) + " |")
		}
		b.WriteString("\n")
		if n == 0 {
			b.WriteString("|")
			for i, wd := range widths {
				b.WriteString(strings.Repeat("-", wd+2))
				if i < len(widths)-1 {
					b.WriteString("+")
				}
			}
			b.WriteString("|\n")
		}
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
