package bakery

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okeb-ng/backoffice/internal/debts"
	"github.com/okeb-ng/backoffice/internal/ledger"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
	"github.com/okeb-ng/backoffice/internal/platform/db"
	"github.com/okeb-ng/backoffice/internal/shared"
)

// Service coordinates the bakery: catalog management, production logs,
// and the sales reconciliation that can raise a shortage debt.
type Service struct {
	pool     *pgxpool.Pool
	repo     *Repository
	debts    *debts.Repository
	cache    *cache.Versioned
	audit    *shared.AuditLogger
	log      *slog.Logger
	lowStock float64
}

func NewService(pool *pgxpool.Pool, repo *Repository, debtRepo *debts.Repository, cache *cache.Versioned, audit *shared.AuditLogger, log *slog.Logger, lowStockThreshold float64) *Service {
	return &Service{pool: pool, repo: repo, debts: debtRepo, cache: cache, audit: audit, log: log, lowStock: lowStockThreshold}
}

// --- catalog ---

func (s *Service) AddProduct(ctx context.Context, name string, price float64) (Product, error) {
	name = ledger.NormalizeName(name)
	if name == "" {
		return Product{}, errors.New("bakery: product name required")
	}
	if price < 0 {
		return Product{}, errors.New("bakery: price cannot be negative")
	}
	p, err := s.repo.InsertProduct(ctx, name, price)
	if err != nil {
		return Product{}, err
	}
	s.recordAudit(ctx, "bakery.product.add", "bakery_product", p.ID, map[string]any{"name": name, "price": price})
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, "bakery.product.delete", "bakery_product", id, nil)
	return nil
}

// --- sales ---

// SubmitSales records one sales-and-dispatch run: one row per cart
// line, and when the remitted cash falls short of the sold value minus
// expenses, one "Bakery Shortage" debt against the staff member. All
// writes share a transaction.
func (s *Service) SubmitSales(ctx context.Context, in SalesInput) (SalesResult, error) {
	if err := in.Validate(); err != nil {
		return SalesResult{}, err
	}

	lines := in.CartLines()
	calc := ledger.ComputeBakery(lines, in.Expenses, in.CashRemitted)
	staff := ledger.NormalizeName(strings.TrimSpace(in.StaffName))
	day := ledger.Today()

	res := SalesResult{TotalSoldValue: calc.TotalSoldValue, DebtIncurred: calc.DebtIncurred}
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)
		for i, line := range lines {
			// The run's expenses ride on its first line so a sum over
			// rows counts them once.
			var expenses float64
			if i == 0 {
				expenses = in.Expenses
			}
			sale, err := repo.InsertSale(ctx, Sale{
				StaffName:    staff,
				BreadType:    line.BreadType,
				OpeningStock: line.QtyGiven,
				ClosingStock: line.QtyReturned,
				SoldQuantity: line.Sold(),
				PricePerLoaf: line.Price,
				TotalAmount:  line.Total(),
				Expenses:     expenses,
				Date:         day,
			})
			if err != nil {
				return err
			}
			res.Sales = append(res.Sales, sale)
		}

		if calc.DebtIncurred > 0 {
			debt, err := s.debts.WithTx(tx).Insert(ctx, debts.CreateInput{
				CustomerName: staff,
				Amount:       calc.DebtIncurred,
				Notes:        debts.CategoryBakeryShortage,
				Date:         day,
			})
			if err != nil {
				return err
			}
			res.DebtID = debt.ID
		}
		return nil
	})
	if err != nil {
		return SalesResult{}, err
	}

	if err := s.cache.Bump(ctx); err != nil && s.log != nil {
		s.log.Warn("cache bump failed", "error", err)
	}

	s.recordAudit(ctx, "bakery.sales.submit", "bakery_sale", 0, map[string]any{
		"staff":         staff,
		"lines":         len(lines),
		"total_sold":    calc.TotalSoldValue,
		"debt_incurred": calc.DebtIncurred,
	})
	return res, nil
}

func (s *Service) ListSales(ctx context.Context, limit int) ([]Sale, error) {
	return s.repo.ListSales(ctx, limit)
}

// --- production ---

func (s *Service) LogProduction(ctx context.Context, in ProductionInput) (ProductionLog, error) {
	if strings.TrimSpace(in.BakerName) == "" {
		return ProductionLog{}, errors.New("bakery: baker name required")
	}
	produced := in.CleanProduced()
	if len(produced) == 0 {
		return ProductionLog{}, errors.New("bakery: nothing produced")
	}
	log, err := s.repo.InsertProduction(ctx, ProductionLog{
		BakerName:     ledger.NormalizeName(in.BakerName),
		FlourUsed:     in.FlourUsed,
		ProducedItems: produced,
		Date:          ledger.Today(),
	})
	if err != nil {
		return ProductionLog{}, err
	}
	s.recordAudit(ctx, "bakery.production.log", "bakery_production", log.ID, map[string]any{
		"baker": log.BakerName,
		"flour": log.FlourUsed,
	})
	return log, nil
}

func (s *Service) ListProduction(ctx context.Context, limit int) ([]ProductionLog, error) {
	return s.repo.ListProduction(ctx, limit)
}

// --- stock ---

// Stock projects live per-product stock from the full history.
func (s *Service) Stock(ctx context.Context) ([]StockLevel, error) {
	production, err := s.repo.AllProduction(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.AllSales(ctx)
	if err != nil {
		return nil, err
	}
	return StockLevels(ProjectStock(production, sales), s.lowStock), nil
}

// LowStock returns only the products below the threshold, for the
// low-stock alert job.
func (s *Service) LowStock(ctx context.Context) ([]StockLevel, error) {
	levels, err := s.Stock(ctx)
	if err != nil {
		return nil, err
	}
	var low []StockLevel
	for _, l := range levels {
		if l.Low {
			low = append(low, l)
		}
	}
	return low, nil
}

func (s *Service) recordAudit(ctx context.Context, action, entity string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	entityID := ""
	if id != 0 {
		entityID = strconv.FormatInt(id, 10)
	}
	if err := s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Meta:     meta,
	}); err != nil && s.log != nil {
		s.log.Warn("audit write failed", "action", action, "error", err)
	}
}
