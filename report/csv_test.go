package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/riskreport/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		RunID:   "01HZX3K6S8Q9V0W1X2Y3Z4A5B6",
		Source:  "prices.csv",
		Options: risk.DefaultOptions(),
		Summaries: []risk.Summary{
			{Ticker: "A", AnnualVolatility: 0.3125, VaR95: 0.044, Observations: 3},
			{Ticker: "B", AnnualVolatility: 0, VaR95: 0, Observations: 2},
			risk.InsufficientSummary("C", 0),
		},
	}
}

func TestCSVEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, CSV{}.Encode(&buf, sampleReport()))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Ticker", "AnnualVolatility", "VaR95"},
		{"A", "0.3125", "0.044"},
		{"B", "0", "0"},
		{"C", "NaN", "NaN"},
	}
	assert.Equal(t, want, rows)
}

func TestCSVEncodeEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, CSV{}.Encode(&buf, Report{}))
	assert.Equal(t, "Ticker,AnnualVolatility,VaR95\n", buf.String())
}

func TestCSVEncodeIgnoresRunMetadata(t *testing.T) {
	t.Parallel()

	a, b := sampleReport(), sampleReport()
	b.RunID = "01HZX3K6S8Q9V0W1X2Y3Z4A5B7"

	var ba, bb bytes.Buffer
	require.NoError(t, CSV{}.Encode(&ba, a))
	require.NoError(t, CSV{}.Encode(&bb, b))
	assert.Equal(t, ba.Bytes(), bb.Bytes())
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.044, "0.044"},
		{0.15811388300841897, "0.15811388300841897"},
		{1e-05, "1e-05"},
		{-0.5, "-0.5"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in))
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	require.NoError(t, WriteFile(path, CSV{}, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Ticker,AnnualVolatility,VaR95\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

type failingEncoder struct{}

func (failingEncoder) Encode(w io.Writer, r Report) error { return assert.AnError }

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	err := WriteFile(path, failingEncoder{}, sampleReport())
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFileMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFile(filepath.Join(t.TempDir(), "nope", "report.csv"), CSV{}, sampleReport())
	assert.Error(t, err)
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	enc, err := ForFormat("")
	require.NoError(t, err)
	assert.IsType(t, CSV{}, enc)

	enc, err = ForFormat(" ORG ")
	require.NoError(t, err)
	assert.IsType(t, Org{}, enc)

	_, err = ForFormat("xlsx")
	assert.ErrorContains(t, err, "unknown report format")
}
