package debts

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/okeb-ng/backoffice/internal/ledger"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
	"github.com/okeb-ng/backoffice/internal/shared"
)

// RepositoryPort abstracts debt persistence for the service layer.
type RepositoryPort interface {
	Insert(ctx context.Context, in CreateInput) (Debt, error)
	Get(ctx context.Context, id int64) (Debt, error)
	ListUnpaid(ctx context.Context, tag string) ([]Debt, error)
	FindOpenByCustomer(ctx context.Context, name, tag string) (Debt, error)
	UpdateAmount(ctx context.Context, id int64, amount float64) error
	Settle(ctx context.Context, id int64, notes string) error
	MarkPaid(ctx context.Context, id int64) error
	SumUnpaid(ctx context.Context) (float64, error)
}

// Service coordinates debt creation and repayments.
type Service struct {
	repo  RepositoryPort
	cache *cache.Versioned
	audit *shared.AuditLogger
	log   *slog.Logger
}

func NewService(repo RepositoryPort, cache *cache.Versioned, audit *shared.AuditLogger, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, audit: audit, log: log}
}

// Create files a new unpaid debt. The customer name is stored in its
// normalized form so later repayments match regardless of how the
// staff typed it.
func (s *Service) Create(ctx context.Context, in CreateInput) (Debt, error) {
	in.CustomerName = ledger.NormalizeName(in.CustomerName)
	if err := in.Validate(); err != nil {
		return Debt{}, err
	}
	if in.Date == "" {
		in.Date = ledger.Today()
	}
	d, err := s.repo.Insert(ctx, in)
	if err != nil {
		return Debt{}, err
	}
	s.bumpCache(ctx)
	s.recordAudit(ctx, "debt.create", d.ID, map[string]any{
		"customer": d.CustomerName,
		"amount":   d.Amount,
	})
	return d, nil
}

func (s *Service) ListUnpaid(ctx context.Context, tag string) ([]Debt, error) {
	return s.repo.ListUnpaid(ctx, tag)
}

func (s *Service) TotalUnpaid(ctx context.Context) (float64, error) {
	return s.repo.SumUnpaid(ctx)
}

// MarkPaid settles a debt by id without adjusting the recorded amount.
// Used when payment arrives outside a department submission.
func (s *Service) MarkPaid(ctx context.Context, id int64) (Debt, error) {
	if err := s.repo.MarkPaid(ctx, id); err != nil {
		return Debt{}, err
	}
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return Debt{}, err
	}
	s.bumpCache(ctx)
	s.recordAudit(ctx, "debt.mark_paid", d.ID, map[string]any{"customer": d.CustomerName})
	return d, nil
}

// Repay applies amount against the customer's most recent open debt in
// the given category. When several open debts share a name the newest
// one absorbs the payment.
func (s *Service) Repay(ctx context.Context, customerName string, amount float64, tag string) (RepaymentOutcome, error) {
	name := ledger.NormalizeName(customerName)
	d, err := s.repo.FindOpenByCustomer(ctx, name, tag)
	if err != nil {
		return RepaymentOutcome{}, err
	}
	out := ApplyRepayment(d, amount)
	if out.Settled {
		err = s.repo.Settle(ctx, d.ID, out.Debt.Notes)
	} else {
		err = s.repo.UpdateAmount(ctx, d.ID, out.NewBalance)
	}
	if err != nil {
		return RepaymentOutcome{}, err
	}
	s.bumpCache(ctx)
	s.recordAudit(ctx, "debt.repay", d.ID, map[string]any{
		"customer": name,
		"amount":   amount,
		"settled":  out.Settled,
	})
	return out, nil
}

func (s *Service) bumpCache(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil && s.log != nil {
		s.log.Warn("cache bump failed", "error", err)
	}
}

func (s *Service) recordAudit(ctx context.Context, action string, id int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, shared.AuditLog{
		Action:   action,
		Entity:   "debt",
		EntityID: strconv.FormatInt(id, 10),
		Meta:     meta,
	}); err != nil && s.log != nil {
		s.log.Warn("audit write failed", "action", action, "error", err)
	}
}
