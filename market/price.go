package market

import "sort"

// PriceRecord is one closing price observation for a security.
type PriceRecord struct {
	Date   Date
	Ticker string
	Close  float64
}

// Tickers returns the distinct tickers in prices, sorted ascending.
func Tickers(prices []PriceRecord) []string {
	seen := make(map[string]struct{}, 16)
	var out []string
	for _, p := range prices {
		if _, ok := seen[p.Ticker]; ok {
			continue
		}
		seen[p.Ticker] = struct{}{}
		out = append(out, p.Ticker)
	}
	sort.Strings(out)
	return out
}

// GroupByTicker partitions prices by ticker and sorts each series by date.
// The sort is stable so rows sharing a date keep their input order.
func GroupByTicker(prices []PriceRecord) map[string][]PriceRecord {
	groups := make(map[string][]PriceRecord)
	for _, p := range prices {
		groups[p.Ticker] = append(groups[p.Ticker], p)
	}
	for _, series := range groups {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}
	return groups
}
