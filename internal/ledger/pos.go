package ledger

// CommissionBand is the volume slice a commission charge applies to.
const CommissionBand = 100000

// BalanceTolerance is the performance-gap band, in naira, inside which a
// POS close-out still counts as balanced. Absorbs rounding noise on high
// transaction volumes.
const BalanceTolerance = 100

// POSInput captures a POS machine's opening and closing positions plus
// the analysis figures for the day.
type POSInput struct {
	OpeningCash   float64
	OpeningWallet float64
	CapitalGiven  float64

	ClosingCash   float64
	ClosingWallet float64
	CashRemitted  float64

	TransactionVolume float64
	ExemptedVolume    float64
	ChargePer100k     float64
	BankCharges       float64
}

// POSResult holds the derived close-out figures.
type POSResult struct {
	RawProfit          float64
	TaxableVolume      float64
	ExpectedCommission float64
	TargetProfit       float64
	PerformanceGap     float64
}

// ComputePOS reconciles the cash a POS operator actually moved against
// the commission the day's volume should have earned. Exempted (free)
// transfers earn nothing and are removed from the taxable volume first.
func ComputePOS(in POSInput) POSResult {
	raw := (in.ClosingCash + in.ClosingWallet + in.CashRemitted) -
		(in.OpeningCash + in.OpeningWallet + in.CapitalGiven)

	taxable := in.TransactionVolume - in.ExemptedVolume
	if taxable < 0 {
		taxable = 0
	}
	commission := (taxable / CommissionBand) * in.ChargePer100k
	target := commission - in.BankCharges

	return POSResult{
		RawProfit:          raw,
		TaxableVolume:      taxable,
		ExpectedCommission: commission,
		TargetProfit:       target,
		PerformanceGap:     raw - target,
	}
}

// Balanced reports whether the operator is within tolerance of target.
func (r POSResult) Balanced() bool {
	return r.PerformanceGap >= -BalanceTolerance
}

// Outcome classifies the close-out: inside the tolerance band is
// balanced, below it a shortage. Gaps above zero are excess.
func (r POSResult) Outcome() Outcome {
	switch {
	case r.PerformanceGap > 0:
		return OutcomeExcess
	case r.Balanced():
		return OutcomeBalanced
	default:
		return OutcomeShortage
	}
}
