package pos

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/okeb-ng/backoffice/internal/ledger"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
	"github.com/okeb-ng/backoffice/internal/shared"
)

// Service records POS close-of-days.
type Service struct {
	repo  *Repository
	cache *cache.Versioned
	audit *shared.AuditLogger
	log   *slog.Logger
}

func NewService(repo *Repository, cache *cache.Versioned, audit *shared.AuditLogger, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, audit: audit, log: log}
}

// Submit derives the day's figures and persists the record. The row
// stores actual_profit (raw cash movement) and expected_commission
// (commission net of bank charges); everything else is returned for
// display only.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	calc := ledger.ComputePOS(ledger.POSInput{
		OpeningCash:       in.OpeningCash,
		OpeningWallet:     in.OpeningWallet,
		CapitalGiven:      in.CapitalGiven,
		ClosingCash:       in.ClosingCash,
		ClosingWallet:     in.ClosingWallet,
		CashRemitted:      in.CashRemitted,
		TransactionVolume: in.TransactionVolume,
		ExemptedVolume:    in.ExemptedVolume,
		ChargePer100k:     in.ChargePer100k,
		BankCharges:       in.BankCharges,
	})

	rec, err := s.repo.Insert(ctx, Record{
		StaffName:          in.StaffName,
		MachineName:        in.MachineName,
		ActualProfit:       calc.RawProfit,
		ExpectedCommission: calc.TargetProfit,
		Date:               ledger.Today(),
	})
	if err != nil {
		return Result{}, err
	}

	if err := s.cache.Bump(ctx); err != nil && s.log != nil {
		s.log.Warn("cache bump failed", "error", err)
	}

	if s.audit != nil {
		if err := s.audit.Record(ctx, shared.AuditLog{
			Action:   "pos.submit",
			Entity:   "pos_record",
			EntityID: strconv.FormatInt(rec.ID, 10),
			Meta: map[string]any{
				"staff":   in.StaffName,
				"machine": in.MachineName,
				"gap":     calc.PerformanceGap,
				"outcome": string(calc.Outcome()),
			},
		}); err != nil && s.log != nil {
			s.log.Warn("audit write failed", "action", "pos.submit", "error", err)
		}
	}

	return Result{
		Record:    rec,
		Breakdown: calc,
		Outcome:   calc.Outcome(),
		Balanced:  calc.Balanced(),
	}, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Record, error) {
	return s.repo.List(ctx, limit)
}
