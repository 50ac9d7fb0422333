// Package debts owns the shared debt ledger: debts created by
// under-collecting department submissions or explicit credit sales, and
// the repayment lifecycle that settles them. Debt rows are never hard
// deleted.
package debts

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates debt lifecycle states.
type Status string

const (
	// StatusUnpaid marks an open debt.
	StatusUnpaid Status = "Unpaid"
	// StatusPaid marks a settled debt.
	StatusPaid Status = "Paid"
)

// Category tags group debts by originating department. Stored in the
// notes column, matching how the business has always filed them.
const (
	CategoryBakeryShortage = "Bakery Shortage"
	CategoryFarm           = "Farm Debt"
)

// Debt is an outstanding amount owed by a named party.
type Debt struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	Status       Status  `json:"status"`
	StaffName    string  `json:"staff_name,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Date         string  `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateInput captures a new debt entry.
type CreateInput struct {
	CustomerName string
	Amount       float64
	StaffName    string
	Notes        string
	Date         string
}

// Validate ensures the entry can be filed.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return errors.New("debts: customer name required")
	}
	if in.Amount <= 0 {
		return errors.New("debts: amount must be positive")
	}
	return nil
}

// RepaymentOutcome describes what applying a repayment did to a debt.
type RepaymentOutcome struct {
	Debt       Debt    `json:"debt"`
	Settled    bool    `json:"settled"`
	NewBalance float64 `json:"new_balance"`
}

// ApplyRepayment computes the result of paying amount against a debt.
// A repayment covering the full balance settles the debt: status Paid,
// amount zeroed, settlement note recorded. Anything less just reduces
// the balance.
func ApplyRepayment(d Debt, amount float64) RepaymentOutcome {
	balance := d.Amount - amount
	if balance <= 0 {
		d.Status = StatusPaid
		d.Amount = 0
		d.Notes = "Paid via " + d.CustomerName
		return RepaymentOutcome{Debt: d, Settled: true, NewBalance: 0}
	}
	d.Amount = balance
	return RepaymentOutcome{Debt: d, Settled: false, NewBalance: balance}
}

// ErrNoOpenDebt indicates no unpaid debt matched the customer name.
var ErrNoOpenDebt = errors.New("debts: no open debt for customer")
