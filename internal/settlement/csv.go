package settlement

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, rows []PeriodRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"bid",
		"baseline",
		"output",
		"actual",
		"effective",
		"clearing_price",
		"settled_price",
		"revenue",
		"cum_revenue",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Period),
			fmtFloat(r.Bid),
			fmtFloat(r.Baseline),
			fmtFloat(r.Output),
			fmtFloat(r.Actual),
			fmtFloat(r.Effective),
			fmtFloat(r.ClearingPrice),
			fmtFloat(r.SettledPrice),
			fmtFloat(r.Revenue),
			fmtFloat(r.CumRevenue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
