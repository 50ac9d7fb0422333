// Package dashboard rolls the four departments' records up into the
// landing-page figures: today's totals, a seven-day trend and a
// per-department split. Rows are fetched wholesale and reduced in
// memory, with the finished overview held in the versioned cache.
package dashboard

// Entry is one department row reduced to what the rollup needs.
type Entry struct {
	Amount   float64
	Expenses float64
	Date     string
}

// History is everything the aggregator folds over.
type History struct {
	Fuel   []Entry
	Bakery []Entry
	Farm   []Entry
	POS    []Entry

	UnpaidDebtsTotal float64
}

// Stats are the headline figures for one day.
type Stats struct {
	TodaySales    float64 `json:"today_sales"`
	TodayExpenses float64 `json:"today_expenses"`
	TodayProfit   float64 `json:"today_profit"`
	TotalDebts    float64 `json:"total_debts"`
}

// TrendPoint is one day of the trailing trend.
type TrendPoint struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// DepartmentShare is one slice of the same-day split.
type DepartmentShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Overview is the full dashboard payload.
type Overview struct {
	Date  string            `json:"date"`
	Stats Stats             `json:"stats"`
	Trend []TrendPoint      `json:"trend"`
	Split []DepartmentShare `json:"split"`
}
