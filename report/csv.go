package report

import (
	"encoding/csv"
	"io"
)

// CSV writes the Header followed by one row per summary. Run metadata is
// left out so identical inputs give byte-identical files.
type CSV struct{}

func (CSV) Encode(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range r.Summaries {
		if err := cw.Write([]string{
			s.Ticker,
			FormatFloat(s.AnnualVolatility),
			FormatFloat(s.VaR95),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
