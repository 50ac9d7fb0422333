// Package bakery covers the bakery's three ledgers: the product
// catalog (bread types and prices), factory production logs, and the
// daily sales-and-dispatch reconciliation. Stock is never stored; it is
// projected from the full production and sales history on demand.
package bakery

import (
	"errors"
	"strings"
	"time"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

// Product is a catalog entry. Names are stored normalized so case and
// spacing variants collapse into one key.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Sale is one dispatched product line from a sales run. opening_stock
// is the quantity given out with the sales person, closing_stock what
// came back.
type Sale struct {
	ID           int64   `json:"id"`
	StaffName    string  `json:"staff_name"`
	BreadType    string  `json:"bread_type"`
	OpeningStock float64 `json:"opening_stock"`
	ClosingStock float64 `json:"closing_stock"`
	SoldQuantity float64 `json:"sold_quantity"`
	PricePerLoaf float64 `json:"price_per_loaf"`
	TotalAmount  float64 `json:"total_amount"`
	Expenses     float64 `json:"expenses"`
	Date         string  `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductionLog is one factory batch: flour in, bread out.
type ProductionLog struct {
	ID            int64              `json:"id"`
	BakerName     string             `json:"baker_name"`
	FlourUsed     float64            `json:"flour_used"`
	ProducedItems map[string]float64 `json:"produced_items"`
	Date          string             `json:"date"`
	CreatedAt     time.Time          `json:"created_at"`
}

// CartItem is one line of a sales submission.
type CartItem struct {
	BreadType   string  `json:"bread_type" validate:"required"`
	QtyGiven    float64 `json:"qty_given" validate:"gt=0"`
	QtyReturned float64 `json:"qty_returned" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// SalesInput is a full sales-and-dispatch close-out.
type SalesInput struct {
	StaffName    string     `json:"staff_name" validate:"required"`
	Cart         []CartItem `json:"cart" validate:"required,min=1,dive"`
	Expenses     float64    `json:"expenses" validate:"gte=0"`
	CashRemitted float64    `json:"cash_remitted" validate:"gte=0"`
}

// Validate covers what the struct tags cannot.
func (in SalesInput) Validate() error {
	if strings.TrimSpace(in.StaffName) == "" {
		return errors.New("bakery: staff name required")
	}
	if len(in.Cart) == 0 {
		return errors.New("bakery: cart is empty")
	}
	return nil
}

// CartLines converts the submission cart into ledger lines with
// normalized bread names.
func (in SalesInput) CartLines() []ledger.CartLine {
	lines := make([]ledger.CartLine, 0, len(in.Cart))
	for _, item := range in.Cart {
		lines = append(lines, ledger.CartLine{
			BreadType:   ledger.NormalizeName(item.BreadType),
			QtyGiven:    item.QtyGiven,
			QtyReturned: item.QtyReturned,
			Price:       item.Price,
		})
	}
	return lines
}

// ProductionInput is one factory batch submission. Zero counts are
// dropped before persisting.
type ProductionInput struct {
	BakerName     string             `json:"baker_name" validate:"required"`
	FlourUsed     float64            `json:"flour_used" validate:"gte=0"`
	ProducedItems map[string]float64 `json:"produced_items" validate:"required"`
}

// CleanProduced returns the produced map with normalized keys and
// non-positive counts removed.
func (in ProductionInput) CleanProduced() map[string]float64 {
	out := make(map[string]float64, len(in.ProducedItems))
	for name, qty := range in.ProducedItems {
		if qty > 0 {
			out[ledger.NormalizeName(name)] += qty
		}
	}
	return out
}

// SalesResult reports a sales submission: the persisted lines plus any
// shortage debt raised against the staff member.
type SalesResult struct {
	Sales          []Sale  `json:"sales"`
	TotalSoldValue float64 `json:"total_sold_value"`
	DebtIncurred   float64 `json:"debt_incurred"`
	DebtID         int64   `json:"debt_id,omitempty"`
}
