package fuel

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

// Repository persists fuel sales.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

const saleColumns = `id, staff_name, pump_id, product, liters_sold, expected_amount, difference, date, created_at`

func scanSale(row pgx.Row) (Sale, error) {
	var s Sale
	err := row.Scan(&s.ID, &s.StaffName, &s.PumpID, &s.Product, &s.LitersSold, &s.ExpectedAmount, &s.Difference, &s.Date, &s.CreatedAt)
	return s, err
}

func (r *Repository) Insert(ctx context.Context, s Sale) (Sale, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO fuel_sales (staff_name, pump_id, product, liters_sold, expected_amount, difference, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+saleColumns,
		s.StaffName, s.PumpID, s.Product, s.LitersSold, s.ExpectedAmount, s.Difference, s.Date)
	return scanSale(row)
}

// List returns sales newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Sale, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM fuel_sales ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListByDate returns sales recorded under a business-day string.
func (r *Repository) ListByDate(ctx context.Context, date string) ([]Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM fuel_sales WHERE date = $1 ORDER BY id DESC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
