package ledger

// Outcome classifies a reconciliation result.
type Outcome string

const (
	// OutcomeShortage means less money was accounted for than expected.
	OutcomeShortage Outcome = "SHORTAGE"
	// OutcomeExcess means more money was accounted for than expected.
	OutcomeExcess Outcome = "EXCESS"
	// OutcomeBalanced means expectations were met.
	OutcomeBalanced Outcome = "BALANCED"
)

// FuelInput captures one pump's daily meter readings and collections.
type FuelInput struct {
	OpeningMeter  float64
	ClosingMeter  float64
	RatePerLiter  float64
	CashCollected float64
	POSCollected  float64
	Expenses      float64
	CreditAmount  float64
}

// FuelResult holds the derived reconciliation figures for a fuel entry.
type FuelResult struct {
	LitersSold   float64
	Expected     float64
	AccountedFor float64
	Variance     float64
}

// ComputeFuel derives liters sold, the expected takings and the variance
// between money accounted for and money expected. A closing meter below
// the opening meter yields negative liters; misentries are surfaced, not
// rejected.
func ComputeFuel(in FuelInput) FuelResult {
	liters := in.ClosingMeter - in.OpeningMeter
	expected := liters * in.RatePerLiter
	accounted := in.CashCollected + in.POSCollected + in.Expenses + in.CreditAmount
	return FuelResult{
		LitersSold:   liters,
		Expected:     expected,
		AccountedFor: accounted,
		Variance:     accounted - expected,
	}
}

// Outcome classifies the variance sign: negative is a shortage, positive
// an excess, zero balanced.
func (r FuelResult) Outcome() Outcome {
	switch {
	case r.Variance < 0:
		return OutcomeShortage
	case r.Variance > 0:
		return OutcomeExcess
	default:
		return OutcomeBalanced
	}
}
