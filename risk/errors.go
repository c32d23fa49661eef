package risk

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/riskreport/market"
)

// ErrInsufficientData marks a security with too few observations for a
// volatility or VaR estimate.
var ErrInsufficientData = errors.New("insufficient data")

// InvalidPriceError reports a non-positive or non-finite close feeding a return.
type InvalidPriceError struct {
	Ticker string
	Date   market.Date
	Close  float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %v for %s on %s: close must be positive and finite",
		e.Close, e.Ticker, e.Date)
}
