package debts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okeb-ng/backoffice/internal/shared"
)

// DBTX is the subset of pgx used by the repository, satisfied by both
// *pgxpool.Pool and pgx.Tx so debt writes can ride inside a department
// submission's transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists debts via Postgres.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to tx, so callers can commit a
// debt alongside the sale that produced it.
func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

const debtColumns = `id, customer_name, amount, status, staff_name, notes, date, created_at`

func scanDebt(row pgx.Row) (Debt, error) {
	var d Debt
	err := row.Scan(&d.ID, &d.CustomerName, &d.Amount, &d.Status, &d.StaffName, &d.Notes, &d.Date, &d.CreatedAt)
	return d, err
}

func (r *Repository) Insert(ctx context.Context, in CreateInput) (Debt, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO debts (customer_name, amount, status, staff_name, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+debtColumns,
		in.CustomerName, in.Amount, StatusUnpaid, in.StaffName, in.Notes, in.Date)
	return scanDebt(row)
}

func (r *Repository) Get(ctx context.Context, id int64) (Debt, error) {
	row := r.db.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id)
	d, err := scanDebt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Debt{}, shared.ErrNotFound
	}
	return d, err
}

// ListUnpaid returns open debts, newest first. A non-empty tag narrows
// to debts whose notes match the category (e.g. "Farm Debt").
func (r *Repository) ListUnpaid(ctx context.Context, tag string) ([]Debt, error) {
	q := `SELECT ` + debtColumns + ` FROM debts WHERE status = $1`
	args := []any{StatusUnpaid}
	if tag != "" {
		q += ` AND notes = $2`
		args = append(args, tag)
	}
	q += ` ORDER BY id DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// FindOpenByCustomer returns the most recent unpaid debt for a customer
// name, optionally constrained to a category tag.
func (r *Repository) FindOpenByCustomer(ctx context.Context, name, tag string) (Debt, error) {
	q := `SELECT ` + debtColumns + ` FROM debts WHERE status = $1 AND customer_name = $2`
	args := []any{StatusUnpaid, name}
	if tag != "" {
		q += ` AND notes = $3`
		args = append(args, tag)
	}
	q += ` ORDER BY id DESC LIMIT 1`

	d, err := scanDebt(r.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Debt{}, ErrNoOpenDebt
	}
	return d, err
}

func (r *Repository) UpdateAmount(ctx context.Context, id int64, amount float64) error {
	_, err := r.db.Exec(ctx, `UPDATE debts SET amount = $2 WHERE id = $1`, id, amount)
	return err
}

// Settle closes a debt after a full repayment: zero balance, Paid
// status, settlement note.
func (r *Repository) Settle(ctx context.Context, id int64, notes string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE debts SET status = $2, amount = 0, notes = $3 WHERE id = $1`,
		id, StatusPaid, notes)
	return err
}

// MarkPaid flips status only; the recorded amount is kept for the
// books.
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE debts SET status = $2 WHERE id = $1 AND status = $3`,
		id, StatusPaid, StatusUnpaid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumUnpaid totals the open ledger, for the dashboard rollup.
func (r *Repository) SumUnpaid(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM debts WHERE status = $1`, StatusUnpaid).
		Scan(&total)
	return total, err
}

// UnpaidSummary returns the open-debt count and total, for page banners.
func (r *Repository) UnpaidSummary(ctx context.Context) (int, float64, error) {
	var (
		count int
		total float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM debts WHERE status = $1`, StatusUnpaid).
		Scan(&count, &total)
	return count, total, err
}
