package fuel

import (
	"context"
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

// Service coordinates fuel submissions: reconciliation arithmetic, the
// sale row and any credit debt committed as one unit.
type Service struct {
	pool  *pgxpool.Pool
	sales *Repository
	debts *debts.Repository
	cache *cache.Versioned
	audit *shared.AuditLogger
	log   *slog.Logger
}

func NewService(pool *pgxpool.Pool, sales *Repository, debtRepo *debts.Repository, cache *cache.Versioned, audit *shared.AuditLogger, log *slog.Logger) *Service {
	return &Service{pool: pool, sales: sales, debts: debtRepo, cache: cache, audit: audit, log: log}
}

// Submit records a pump close-out. A positive credit amount files an
// Unpaid debt against the credit customer in the same transaction as
// the sale.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	calc := ledger.ComputeFuel(ledger.FuelInput{
		OpeningMeter:  in.OpeningMeter,
		ClosingMeter:  in.ClosingMeter,
		RatePerLiter:  in.Rate,
		CashCollected: in.CashCollected,
		POSCollected:  in.POSCollected,
		Expenses:      in.Expenses,
		CreditAmount:  in.CreditAmount,
	})
	day := ledger.Today()

	var res Result
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		sale, err := s.sales.WithTx(tx).Insert(ctx, Sale{
			StaffName:      in.StaffName,
			PumpID:         in.PumpID,
			Product:        in.Product,
			LitersSold:     calc.LitersSold,
			ExpectedAmount: calc.Expected,
			Difference:     calc.Variance,
			Date:           day,
		})
		if err != nil {
			return err
		}
		res.Sale = sale
		res.Outcome = calc.Outcome()

		if in.CreditAmount > 0 {
			customer := strings.TrimSpace(in.CreditCustomer)
			if customer == "" {
				customer = "Unknown Customer"
			}
			debt, err := s.debts.WithTx(tx).Insert(ctx, debts.CreateInput{
				CustomerName: ledger.NormalizeName(customer),
				Amount:       in.CreditAmount,
				StaffName:    in.StaffName,
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
		return Result{}, err
	}

	if err := s.cache.Bump(ctx); err != nil && s.log != nil {
		s.log.Warn("cache bump failed", "error", err)
	}

	if s.audit != nil {
		if err := s.audit.Record(ctx, shared.AuditLog{
			Action:   "fuel.submit",
			Entity:   "fuel_sale",
			EntityID: strconv.FormatInt(res.Sale.ID, 10),
			Meta: map[string]any{
				"staff":    in.StaffName,
				"pump":     in.PumpID,
				"variance": calc.Variance,
				"outcome":  string(res.Outcome),
			},
		}); err != nil && s.log != nil {
			s.log.Warn("audit write failed", "action", "fuel.submit", "error", err)
		}
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Sale, error) {
	return s.sales.List(ctx, limit)
}

// ListForDay returns the pump entries filed on one business day.
func (s *Service) ListForDay(ctx context.Context, date string) ([]Sale, error) {
	return s.sales.ListByDate(ctx, date)
}

// DebtBanner summarises the open ledger for the fuel page banner.
func (s *Service) DebtBanner(ctx context.Context) (DebtBanner, error) {
	count, total, err := s.debts.UnpaidSummary(ctx)
	if err != nil {
		return DebtBanner{}, err
	}
	return DebtBanner{Count: count, Total: total}, nil
}
