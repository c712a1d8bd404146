package cashflow

import (
	"encoding/csv"
	"os"
	"strconv"

	"solar-economics/internal/model"
)

// WriteLedgerCSV exports a cashflow series for the report pipeline. Column
// names are load-bearing: downstream templates bind to them by name.
func WriteLedgerCSV(path string, entries []model.CashflowEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"savings",
		"opex",
		"incentives",
		"investment",
		"net_cashflow",
		"cumulative",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, en := range entries {
		row := []string{
			strconv.Itoa(en.Year),
			fmtMoney(en.Savings),
			fmtMoney(en.Opex),
			fmtMoney(en.Incentives),
			fmtMoney(en.Investment),
			fmtMoney(en.NetCashflow),
			fmtMoney(en.Cumulative),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// fmtMoney rounds to the cent at the output boundary only.
func fmtMoney(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
