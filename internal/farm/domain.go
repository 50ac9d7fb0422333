// Package farm records livestock and produce sales for the farm and
// piggery. One submission can carry three movements at once: the sale
// itself, a new credit debt, and a repayment against an old one; all
// three commit together.
package farm

import (
	"errors"
	"strings"
	"time"

	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/ledger"
)

// Record is one persisted farm sale.
type Record struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Item         string  `json:"item"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalAmount  float64 `json:"total_amount"`
	Expenses     float64 `json:"expenses"`
	Note         string  `json:"note,omitempty"`
	Date         string  `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubmitInput is a full farm sale form, with the optional credit and
// repayment sections.
type SubmitInput struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Item         string  `json:"item" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
	Expenses     float64 `json:"expenses" validate:"gte=0"`
	Note         string  `json:"note"`

	CreditAmount   float64 `json:"credit_amount" validate:"gte=0"`
	CreditCustomer string  `json:"credit_customer"`

	DebtRepaidAmount   float64 `json:"debt_repaid_amount" validate:"gte=0"`
	DebtRepaidCustomer string  `json:"debt_repaid_customer"`
}

func (in SubmitInput) Validate() error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return errors.New("farm: customer name required")
	}
	if in.DebtRepaidAmount > 0 && strings.TrimSpace(in.DebtRepaidCustomer) == "" {
		return errors.New("farm: repayment needs a customer")
	}
	return nil
}

// Result reports what one submission produced.
type Result struct {
	Record    Record                  `json:"record"`
	NetProfit float64                 `json:"net_profit"`
	DebtID    int64                   `json:"debt_id,omitempty"`
	Repayment *debts.RepaymentOutcome `json:"repayment,omitempty"`
	Stats     ledger.FarmResult       `json:"stats"`
}
