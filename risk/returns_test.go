package risk

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/rustyeddy/riskreport/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = market.NewDate(2024, time.January, 2)

func series(ticker string, closes ...float64) []market.PriceRecord {
	out := make([]market.PriceRecord, len(closes))
	for i, c := range closes {
		out[i] = market.PriceRecord{Date: day0.AddDays(i), Ticker: ticker, Close: c}
	}
	return out
}

func TestLogReturn(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Log(102.0/100.0), LogReturn(100, 102), 1e-15)
	assert.Equal(t, 0.0, LogReturn(50, 50))
}

func TestComputeReturns(t *testing.T) {
	t.Parallel()

	prices := append(series("A", 100, 102, 101, 105), series("B", 50, 49, 51)...)
	got, err := ComputeReturns(prices)
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "A", got[0].Ticker)
	assert.Equal(t, day0.AddDays(1), got[0].Date)
	assert.InDelta(t, math.Log(102.0/100.0), got[0].LogReturn, 1e-12)
	assert.InDelta(t, math.Log(101.0/102.0), got[1].LogReturn, 1e-12)
	assert.InDelta(t, math.Log(105.0/101.0), got[2].LogReturn, 1e-12)

	assert.Equal(t, "B", got[3].Ticker)
	assert.InDelta(t, math.Log(49.0/50.0), got[3].LogReturn, 1e-12)
	assert.InDelta(t, math.Log(51.0/49.0), got[4].LogReturn, 1e-12)
}

func TestComputeReturnsCountIsPricesMinusOne(t *testing.T) {
	t.Parallel()

	prices := append(series("A", 1, 2, 3, 4, 5, 6), series("B", 7, 8)...)
	prices = append(prices, series("C", 9)...)

	got, err := ComputeReturns(prices)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, r := range got {
		counts[r.Ticker]++
	}
	assert.Equal(t, map[string]int{"A": 5, "B": 1}, counts)
}

func TestComputeReturnsOrderIndependent(t *testing.T) {
	t.Parallel()

	prices := append(series("A", 100, 102, 101, 105, 99, 98), series("B", 50, 49, 51, 52)...)
	want, err := ComputeReturns(prices)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]market.PriceRecord(nil), prices...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := ComputeReturns(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestComputeReturnsConstantPrice(t *testing.T) {
	t.Parallel()

	got, err := ComputeReturns(series("A", 10, 10, 10, 10))
	require.NoError(t, err)
	for _, r := range got {
		assert.Equal(t, 0.0, r.LogReturn)
	}
}

func TestComputeReturnsInvalidPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		close float64
		at    int
	}{
		{"zero", 0, 2},
		{"negative", -5, 1},
		{"first observation", -1, 0},
		{"nan", math.NaN(), 3},
		{"inf", math.Inf(1), 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prices := series("A", 100, 101, 102, 103)
			prices[tt.at].Close = tt.close
			prices = append(prices, series("B", 1, 2)...)

			got, err := ComputeReturns(prices)
			require.Error(t, err)
			assert.Nil(t, got)

			var ipe *InvalidPriceError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, "A", ipe.Ticker)
			assert.Equal(t, day0.AddDays(tt.at), ipe.Date)
			assert.Contains(t, err.Error(), "invalid price")
		})
	}
}

func TestComputeReturnsSinglePriceStillValidated(t *testing.T) {
	t.Parallel()

	_, err := ComputeReturns(series("C", 0))
	var ipe *InvalidPriceError
	assert.True(t, errors.As(err, &ipe))
}

func TestGroupReturns(t *testing.T) {
	t.Parallel()

	got := GroupReturns([]ReturnRecord{
		{Ticker: "A", LogReturn: 1},
		{Ticker: "B", LogReturn: 2},
		{Ticker: "A", LogReturn: 3},
	})
	assert.Equal(t, map[string][]float64{"A": {1, 3}, "B": {2}}, got)
}
