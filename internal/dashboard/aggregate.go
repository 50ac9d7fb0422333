package dashboard

import (
	"time"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

// TrendDays is the length of the trailing trend series.
const TrendDays = 7

func sumDay(entries []Entry, day string) (sales, expenses float64) {
	for _, e := range entries {
		if e.Date != day {
			continue
		}
		sales += e.Amount
		expenses += e.Expenses
	}
	return sales, expenses
}

// BuildOverview folds the full history into the dashboard payload for
// the day containing ref. POS contributes its actual profit rather
// than gross volume, since a transfer desk's "sales" are commission.
// Fuel and POS expenses are already embedded in their variance figures
// and are not counted again here.
func BuildOverview(h History, ref time.Time) Overview {
	today := ledger.Day(ref)

	fuelSales, _ := sumDay(h.Fuel, today)
	bakerySales, bakeryExpenses := sumDay(h.Bakery, today)
	farmSales, farmExpenses := sumDay(h.Farm, today)
	posProfit, _ := sumDay(h.POS, today)

	sales := fuelSales + bakerySales + farmSales + posProfit
	expenses := bakeryExpenses + farmExpenses

	split := make([]DepartmentShare, 0, 4)
	for _, share := range []DepartmentShare{
		{Name: "Fuel", Value: fuelSales},
		{Name: "Bakery", Value: bakerySales},
		{Name: "POS", Value: posProfit},
		{Name: "Farm", Value: farmSales},
	} {
		if share.Value > 0 {
			split = append(split, share)
		}
	}

	trend := make([]TrendPoint, 0, TrendDays)
	for _, day := range ledger.TrailingDays(ref, TrendDays) {
		var total float64
		for _, entries := range [][]Entry{h.Fuel, h.Bakery, h.Farm, h.POS} {
			daySales, _ := sumDay(entries, day)
			total += daySales
		}
		trend = append(trend, TrendPoint{Date: day, Label: day[:5], Total: total})
	}

	return Overview{
		Date: today,
		Stats: Stats{
			TodaySales:    sales,
			TodayExpenses: expenses,
			TodayProfit:   sales - expenses,
			TotalDebts:    h.UnpaidDebtsTotal,
		},
		Trend: trend,
		Split: split,
	}
}
