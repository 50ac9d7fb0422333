package farm

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

// Repository persists farm records.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

const recordColumns = `id, customer_name, item, quantity, price_per_unit, total_amount, expenses, note, date, created_at`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.CustomerName, &rec.Item, &rec.Quantity, &rec.PricePerUnit, &rec.TotalAmount, &rec.Expenses, &rec.Note, &rec.Date, &rec.CreatedAt)
	return rec, err
}

func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO farm_records (customer_name, item, quantity, price_per_unit, total_amount, expenses, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+recordColumns,
		rec.CustomerName, rec.Item, rec.Quantity, rec.PricePerUnit, rec.TotalAmount, rec.Expenses, rec.Note, rec.Date)
	return scanRecord(row)
}

func (r *Repository) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+recordColumns+` FROM farm_records ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
