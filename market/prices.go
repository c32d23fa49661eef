package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOptions names the columns to read and how to parse them.
type LoadOptions struct {
	DateColumn   string
	TickerColumn string
	CloseColumn  string
	DateLayouts  []string
	Comma        rune
}

// DefaultLoadOptions reads Date,Ticker,Close from comma separated text.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		DateColumn:   "Date",
		TickerColumn: "Ticker",
		CloseColumn:  "Close",
		Comma:        ',',
	}
}

func (o LoadOptions) withDefaults() LoadOptions {
	def := DefaultLoadOptions()
	if o.DateColumn == "" {
		o.DateColumn = def.DateColumn
	}
	if o.TickerColumn == "" {
		o.TickerColumn = def.TickerColumn
	}
	if o.CloseColumn == "" {
		o.CloseColumn = def.CloseColumn
	}
	if o.Comma == 0 {
		o.Comma = def.Comma
	}
	return o
}

// LoadPrices opens path and reads it with ReadPrices.
func LoadPrices(path string, opts LoadOptions) ([]PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prices: %w", err)
	}
	defer f.Close()

	return ReadPrices(f, opts)
}

// ReadPrices reads a header row followed by price rows. Extra columns are
// ignored. Prices are returned in input order and are not validated beyond
// being parseable numbers.
func ReadPrices(r io.Reader, opts LoadOptions) ([]PriceRecord, error) {
	opts = opts.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataFormatError{Err: ErrNoHeader}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header, opts.DateColumn, opts.TickerColumn, opts.CloseColumn)
	if err != nil {
		return nil, err
	}
	di, ti, ci := idx[0], idx[1], idx[2]
	need := max(di, ti, ci) + 1

	var out []PriceRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &DataFormatError{Line: pe.Line, Err: err}
			}
			return nil, fmt.Errorf("read prices: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(row) < need {
			return nil, &DataFormatError{Line: line, Value: strings.Join(row, string(opts.Comma)), Err: ErrShortRow}
		}

		rawDate := strings.TrimSpace(row[di])
		d, err := ParseDate(rawDate, opts.DateLayouts)
		if err != nil {
			return nil, &DataFormatError{Line: line, Column: opts.DateColumn, Value: rawDate, Err: ErrBadDate}
		}

		ticker := strings.TrimSpace(row[ti])
		if ticker == "" {
			return nil, &DataFormatError{Line: line, Column: opts.TickerColumn, Err: ErrEmptyTicker}
		}

		rawClose := strings.TrimSpace(row[ci])
		c, err := strconv.ParseFloat(rawClose, 64)
		if err != nil {
			return nil, &DataFormatError{Line: line, Column: opts.CloseColumn, Value: rawClose, Err: ErrBadClose}
		}

		out = append(out, PriceRecord{Date: d, Ticker: ticker, Close: c})
	}
}

// columnIndex resolves each wanted column name against the header.
func columnIndex(header []string, names ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	idx := make([]int, len(names))
	for i, name := range names {
		p, ok := pos[name]
		if !ok {
			return nil, &DataFormatError{Line: 1, Column: name, Err: ErrMissingColumn}
		}
		idx[i] = p
	}
	return idx, nil
}
