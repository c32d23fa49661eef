package risk

import "fmt"

// Options controls how a return series is reduced to risk figures.
type Options struct {
	Alpha       float64 // tail probability for VaR, 0.05 = 95% confidence
	TradingDays int     // annualization factor, 252
}

const (
	DefaultAlpha       = 0.05
	DefaultTradingDays = 252
)

func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, TradingDays: DefaultTradingDays}
}

func (o Options) Validate() error {
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return fmt.Errorf("alpha must be between 0 and 1 (exclusive), got %v", o.Alpha)
	}
	if o.TradingDays <= 0 {
		return fmt.Errorf("trading days must be positive, got %d", o.TradingDays)
	}
	return nil
}
