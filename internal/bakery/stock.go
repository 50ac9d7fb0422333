package bakery

import (
	"sort"

	"github.com/okeb-ng/backoffice/internal/ledger"
)

// StockLevel is a projected on-hand quantity for one bread type.
type StockLevel struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Low      bool    `json:"low"`
}

// ProjectStock folds the full production and sales history into
// current per-product stock: every produced batch adds, every dispatch
// subtracts its opening_stock (the quantity given out, not the
// quantity sold). Keys are normalized names.
func ProjectStock(production []ProductionLog, sales []Sale) map[string]float64 {
	stock := map[string]float64{}
	for _, log := range production {
		for bread, qty := range log.ProducedItems {
			stock[ledger.NormalizeName(bread)] += qty
		}
	}
	for _, sale := range sales {
		if sale.BreadType == "" || sale.OpeningStock == 0 {
			continue
		}
		stock[ledger.NormalizeName(sale.BreadType)] -= sale.OpeningStock
	}
	return stock
}

// StockLevels renders a projection as a sorted slice, flagging
// quantities below the threshold.
func StockLevels(stock map[string]float64, lowThreshold float64) []StockLevel {
	out := make([]StockLevel, 0, len(stock))
	for name, qty := range stock {
		out = append(out, StockLevel{Name: name, Quantity: qty, Low: qty < lowThreshold})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
