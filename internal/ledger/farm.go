package ledger

// FarmResult holds the derived figures for a farm sale entry.
type FarmResult struct {
	ExpectedTotal float64
	NetProfit     float64
}

// ComputeFarm derives the sale total and the net after farm expenses.
func ComputeFarm(quantity, pricePerUnit, expenses float64) FarmResult {
	total := quantity * pricePerUnit
	return FarmResult{
		ExpectedTotal: total,
		NetProfit:     total - expenses,
	}
}
