package ledger

// CartLine is one dispatched product line in a bakery sales submission.
type CartLine struct {
	BreadType   string
	QtyGiven    float64
	QtyReturned float64
	Price       float64
}

// Sold returns the quantity actually sold on this line.
func (l CartLine) Sold() float64 {
	return l.QtyGiven - l.QtyReturned
}

// Total returns the money value of this line.
func (l CartLine) Total() float64 {
	return l.Sold() * l.Price
}

// BakeryResult holds the cart-level reconciliation for a sales run.
type BakeryResult struct {
	TotalSoldValue float64
	DebtIncurred   float64
}

// ComputeBakery reconciles a dispatch cart against expenses and the cash
// the sales person remitted. A positive DebtIncurred is a shortage owed
// by the staff member; zero or negative means the run is settled.
func ComputeBakery(cart []CartLine, expenses, cashRemitted float64) BakeryResult {
	var total float64
	for _, line := range cart {
		total += line.Total()
	}
	return BakeryResult{
		TotalSoldValue: total,
		DebtIncurred:   total - expenses - cashRemitted,
	}
}
