package risk

import (
	"math"
	"sort"
)

// Summary holds the risk figures of one security.
type Summary struct {
	Ticker           string
	AnnualVolatility float64
	VaR95            float64 // VaR at the configured alpha; named for the report column
	Observations     int     // number of returns behind the figures
}

// Sufficient reports whether the figures were computed from enough returns.
func (s Summary) Sufficient() bool {
	return s.Observations >= MinObservations
}

// InsufficientSummary is the NaN placeholder for a security that cannot be measured.
func InsufficientSummary(ticker string, observations int) Summary {
	return Summary{
		Ticker:           ticker,
		AnnualVolatility: math.NaN(),
		VaR95:            math.NaN(),
		Observations:     observations,
	}
}

// Aggregate reduces the returns of each security to a Summary, sorted by
// ticker. Securities with fewer than MinObservations returns get NaN figures
// instead of an error; callers decide whether to report them.
func Aggregate(returns []ReturnRecord, opts Options) ([]Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	groups := GroupReturns(returns)
	out := make([]Summary, 0, len(groups))
	for ticker, series := range groups {
		if len(series) < MinObservations {
			out = append(out, InsufficientSummary(ticker, len(series)))
			continue
		}
		out = append(out, Summary{
			Ticker:           ticker,
			AnnualVolatility: AnnualVolatility(series, opts.TradingDays),
			VaR95:            HistoricalVaR(series, opts.Alpha),
			Observations:     len(series),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}
