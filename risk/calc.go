package risk

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MinObservations is the smallest return count with a defined sample
// standard deviation.
const MinObservations = 2

// AnnualVolatility is the unbiased (n-1) standard deviation of returns scaled
// by sqrt(tradingDays). It is NaN below MinObservations.
func AnnualVolatility(returns []float64, tradingDays int) float64 {
	if len(returns) < MinObservations {
		return math.NaN()
	}
	return stat.StdDev(returns, nil) * math.Sqrt(float64(tradingDays))
}

// HistoricalVaR is the negated alpha-quantile of returns, so losses are
// positive. It is NaN below MinObservations.
func HistoricalVaR(returns []float64, alpha float64) float64 {
	if len(returns) < MinObservations {
		return math.NaN()
	}
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	v := -Quantile(sorted, alpha)
	if v == 0 {
		// drop the sign of -0
		return 0
	}
	return v
}

// Quantile returns the p-quantile of an ascending sorted sample, interpolating
// linearly between the order statistics around position p*(n-1).
// p is clamped to [0, 1]; an empty sample yields NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Mean of returns, NaN when empty.
func Mean(returns []float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	return stat.Mean(returns, nil)
}
