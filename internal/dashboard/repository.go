package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository reads the reduced rows the rollup needs.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) queryEntries(ctx context.Context, q string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Amount, &e.Expenses, &e.Date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// FetchHistory pulls every department's rows plus the open debt total.
func (r *Repository) FetchHistory(ctx context.Context) (History, error) {
	var h History
	var err error

	if h.Fuel, err = r.queryEntries(ctx,
		`SELECT COALESCE(expected_amount, 0), 0, date FROM fuel_sales`); err != nil {
		return History{}, err
	}
	if h.Bakery, err = r.queryEntries(ctx,
		`SELECT COALESCE(total_amount, 0), COALESCE(expenses, 0), date FROM bakery_sales`); err != nil {
		return History{}, err
	}
	if h.Farm, err = r.queryEntries(ctx,
		`SELECT COALESCE(total_amount, 0), COALESCE(expenses, 0), date FROM farm_records`); err != nil {
		return History{}, err
	}
	if h.POS, err = r.queryEntries(ctx,
		`SELECT COALESCE(actual_profit, 0), 0, date FROM pos_records`); err != nil {
		return History{}, err
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM debts WHERE status = 'Unpaid'`).
		Scan(&h.UnpaidDebtsTotal); err != nil {
		return History{}, err
	}
	return h, nil
}
