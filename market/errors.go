package market

import (
	"errors"
	"fmt"
)

var (
	ErrNoHeader      = errors.New("no header row")
	ErrMissingColumn = errors.New("missing required column")
	ErrShortRow      = errors.New("row has fewer fields than the header")
	ErrBadDate       = errors.New("unparseable date")
	ErrBadClose      = errors.New("unparseable close price")
	ErrEmptyTicker   = errors.New("empty security identifier")
)

// DataFormatError reports malformed or incomplete price input.
// Line is 1-based and counts the header; it is 0 when no row applies.
type DataFormatError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *DataFormatError) Error() string {
	msg := "data format"
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DataFormatError) Unwrap() error { return e.Err }
