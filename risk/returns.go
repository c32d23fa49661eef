package risk

import (
	"math"
	"sort"

	"github.com/rustyeddy/riskreport/market"
)

// ReturnRecord is the daily log return of a security ending on Date.
type ReturnRecord struct {
	Date      market.Date
	Ticker    string
	LogReturn float64
}

// ComputeReturns derives per-security log returns from prices given in any
// order. Each series is sorted by date first; the earliest observation of
// every security has no prior price and yields no return.
//
// Any non-positive or non-finite close aborts with an *InvalidPriceError,
// including the first close of a series and single-price securities.
// Output is ordered by ticker, then date.
func ComputeReturns(prices []market.PriceRecord) ([]ReturnRecord, error) {
	groups := market.GroupByTicker(prices)

	tickers := make([]string, 0, len(groups))
	for t := range groups {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	out := make([]ReturnRecord, 0, max(len(prices)-len(groups), 0))
	for _, ticker := range tickers {
		series := groups[ticker]
		for i, p := range series {
			if !validPrice(p.Close) {
				return nil, &InvalidPriceError{Ticker: p.Ticker, Date: p.Date, Close: p.Close}
			}
			if i == 0 {
				continue
			}
			out = append(out, ReturnRecord{
				Date:      p.Date,
				Ticker:    ticker,
				LogReturn: LogReturn(series[i-1].Close, p.Close),
			})
		}
	}
	return out, nil
}

// LogReturn is log(1 + r) for the simple return r = cur/prev - 1.
func LogReturn(prev, cur float64) float64 {
	return math.Log1p(cur/prev - 1)
}

// GroupReturns collects the log returns of each ticker, keeping record order.
func GroupReturns(returns []ReturnRecord) map[string][]float64 {
	out := make(map[string][]float64)
	for _, r := range returns {
		out[r.Ticker] = append(out[r.Ticker], r.LogReturn)
	}
	return out
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}
