// Package report renders risk summaries to the output formats of the CLI.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rustyeddy/riskreport/risk"
)

// Header is the column layout of the CSV report.
var Header = []string{"Ticker", "AnnualVolatility", "VaR95"}

// Report is everything a renderer may print about one run.
type Report struct {
	RunID     string
	Source    string
	Options   risk.Options
	Summaries []risk.Summary
}

// Encoder renders a Report.
type Encoder interface {
	Encode(w io.Writer, r Report) error
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"csv", "org"}

// ForFormat returns the encoder for a format name.
func ForFormat(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return CSV{}, nil
	case "org":
		return Org{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (supported: %s)", name, strings.Join(Formats, ", "))
	}
}

// WriteFile encodes r into path. The report goes to a temporary file in the
// same directory that is renamed over path only once fully written, so a
// failed run never leaves a partial report behind.
func WriteFile(path string, enc Encoder, r Report) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = enc.Encode(tmp, r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}

// FormatFloat prints the shortest representation that round-trips, NaN as "NaN".
func FormatFloat(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
