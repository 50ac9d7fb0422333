package farm

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

// Service coordinates farm submissions.
type Service struct {
	pool    *pgxpool.Pool
	records *Repository
	debts   *debts.Repository
	cache   *cache.Versioned
	audit   *shared.AuditLogger
	log     *slog.Logger
}

func NewService(pool *pgxpool.Pool, records *Repository, debtRepo *debts.Repository, cache *cache.Versioned, audit *shared.AuditLogger, log *slog.Logger) *Service {
	return &Service{pool: pool, records: records, debts: debtRepo, cache: cache, audit: audit, log: log}
}

// Submit records a farm sale. A positive credit amount files a "Farm
// Debt" against the credit customer; a repayment section settles or
// reduces that customer's newest open farm debt. All movements share
// one transaction. A repayment naming a customer with no open debt is
// skipped, not rejected.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	calc := ledger.ComputeFarm(in.Quantity, in.PricePerUnit, in.Expenses)
	customer := ledger.NormalizeName(in.CustomerName)
	day := ledger.Today()

	var res Result
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		rec, err := s.records.WithTx(tx).Insert(ctx, Record{
			CustomerName: customer,
			Item:         in.Item,
			Quantity:     in.Quantity,
			PricePerUnit: in.PricePerUnit,
			TotalAmount:  calc.ExpectedTotal,
			Expenses:     in.Expenses,
			Note:         in.Note,
			Date:         day,
		})
		if err != nil {
			return err
		}
		res.Record = rec
		res.NetProfit = calc.NetProfit
		res.Stats = calc

		debtRepo := s.debts.WithTx(tx)

		if in.CreditAmount > 0 {
			creditCustomer := strings.TrimSpace(in.CreditCustomer)
			if creditCustomer == "" {
				creditCustomer = "Unknown"
			}
			debt, err := debtRepo.Insert(ctx, debts.CreateInput{
				CustomerName: ledger.NormalizeName(creditCustomer),
				Amount:       in.CreditAmount,
				StaffName:    customer,
				Notes:        debts.CategoryFarm,
				Date:         day,
			})
			if err != nil {
				return err
			}
			res.DebtID = debt.ID
		}

		if in.DebtRepaidAmount > 0 && in.DebtRepaidCustomer != "" {
			name := ledger.NormalizeName(in.DebtRepaidCustomer)
			debt, err := debtRepo.FindOpenByCustomer(ctx, name, debts.CategoryFarm)
			if errors.Is(err, debts.ErrNoOpenDebt) {
				return nil
			}
			if err != nil {
				return err
			}
			out := debts.ApplyRepayment(debt, in.DebtRepaidAmount)
			if out.Settled {
				err = debtRepo.Settle(ctx, debt.ID, out.Debt.Notes)
			} else {
				err = debtRepo.UpdateAmount(ctx, debt.ID, out.NewBalance)
			}
			if err != nil {
				return err
			}
			res.Repayment = &out
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
			Action:   "farm.submit",
			Entity:   "farm_record",
			EntityID: strconv.FormatInt(res.Record.ID, 10),
			Meta: map[string]any{
				"customer":   customer,
				"item":       in.Item,
				"total":      calc.ExpectedTotal,
				"net_profit": calc.NetProfit,
			},
		}); err != nil && s.log != nil {
			s.log.Warn("audit write failed", "action", "farm.submit", "error", err)
		}
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Record, error) {
	return s.records.List(ctx, limit)
}
