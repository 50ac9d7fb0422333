// Package fuel records daily pump reconciliations for the fuel and gas
// station. Each submission stores the derived liters sold, expected
// takings and variance alongside the raw entry, and a credit sale on
// the same form files a debt in the same transaction.
package fuel

import (
	"errors"
	"strings"
	"time"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

// Sale is one persisted pump reconciliation row.
type Sale struct {
	ID             int64   `json:"id"`
	StaffName      string  `json:"staff_name"`
	PumpID         string  `json:"pump_id"`
	Product        string  `json:"product"`
	LitersSold     float64 `json:"liters_sold"`
	ExpectedAmount float64 `json:"expected_amount"`
	Difference     float64 `json:"difference"`
	Date           string  `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmitInput is a full pump close-out form.
type SubmitInput struct {
	StaffName      string  `json:"staff_name" validate:"required"`
	PumpID         string  `json:"pump_id" validate:"required"`
	Product        string  `json:"product" validate:"required"`
	OpeningMeter   float64 `json:"opening_meter"`
	ClosingMeter   float64 `json:"closing_meter"`
	Rate           float64 `json:"rate" validate:"gte=0"`
	CashCollected  float64 `json:"cash_collected" validate:"gte=0"`
	POSCollected   float64 `json:"pos_collected" validate:"gte=0"`
	Expenses       float64 `json:"expenses" validate:"gte=0"`
	CreditAmount   float64 `json:"credit_amount" validate:"gte=0"`
	CreditCustomer string  `json:"credit_customer"`
}

// Validate checks the parts the validator tags cannot express.
func (in SubmitInput) Validate() error {
	if strings.TrimSpace(in.StaffName) == "" {
		return errors.New("fuel: staff name required")
	}
	return nil
}

// Result reports what a submission produced.
type Result struct {
	Sale    Sale           `json:"sale"`
	Outcome ledger.Outcome `json:"outcome"`
	DebtID  int64          `json:"debt_id,omitempty"`
}

// DebtBanner carries the open-debt reminder shown above the fuel form.
type DebtBanner struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
