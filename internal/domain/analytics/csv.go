// internal/domain/analytics/csv.go
package analytics

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteTrendCSV writes the trend series as CSV with the export
// contract's header: Date,Revenue,Cost,Profit, one row per bucket.
func WriteTrendCSV(w io.Writer, trend []TrendPoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Revenue", "Cost", "Profit"}); err != nil {
		return err
	}

	for _, point := range trend {
		row := []string{
			point.Label,
			strconv.FormatFloat(point.Revenue, 'f', 2, 64),
			strconv.FormatFloat(point.Cost, 'f', 2, 64),
			strconv.FormatFloat(point.Profit, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
