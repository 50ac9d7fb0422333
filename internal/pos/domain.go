// Package pos records close-of-day reconciliations for the
// money-transfer desk. Each machine's operator submits opening and
// closing positions plus the day's transaction volume; the persisted
// row keeps only the two derived figures the business reports on.
package pos

import (
	"errors"
	"strings"
	"time"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

// Record is one persisted close-of-day row.
type Record struct {
	ID                 int64   `json:"id"`
	StaffName          string  `json:"staff_name"`
	MachineName        string  `json:"machine_name"`
	ActualProfit       float64 `json:"actual_profit"`
	ExpectedCommission float64 `json:"expected_commission"`
	Date               string  `json:"date"`
	CreatedAt          time.Time `json:"created_at"`
}

// SubmitInput is a full close-of-day form.
type SubmitInput struct {
	StaffName   string `json:"staff_name" validate:"required"`
	MachineName string `json:"machine_name" validate:"required"`

	OpeningCash   float64 `json:"opening_cash" validate:"gte=0"`
	OpeningWallet float64 `json:"opening_wallet" validate:"gte=0"`
	CapitalGiven  float64 `json:"capital_given" validate:"gte=0"`

	ClosingCash   float64 `json:"closing_cash" validate:"gte=0"`
	ClosingWallet float64 `json:"closing_wallet" validate:"gte=0"`
	CashRemitted  float64 `json:"cash_remitted" validate:"gte=0"`

	TransactionVolume float64 `json:"transaction_volume" validate:"gte=0"`
	ExemptedVolume    float64 `json:"exempted_volume" validate:"gte=0"`
	ChargePer100k     float64 `json:"charge_per_100k" validate:"gte=0"`
	BankCharges       float64 `json:"bank_charges" validate:"gte=0"`
}

func (in SubmitInput) Validate() error {
	if strings.TrimSpace(in.StaffName) == "" {
		return errors.New("pos: staff name required")
	}
	if strings.TrimSpace(in.MachineName) == "" {
		return errors.New("pos: machine name required")
	}
	return nil
}

// Result reports a close-of-day: the persisted record plus the full
// derived breakdown for display.
type Result struct {
	Record    Record           `json:"record"`
	Breakdown ledger.POSResult `json:"breakdown"`
	Outcome   ledger.Outcome   `json:"outcome"`
	Balanced  bool             `json:"balanced"`
}
