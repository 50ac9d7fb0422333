package pos

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

// Repository persists POS records.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

const recordColumns = `id, staff_name, machine_name, actual_profit, expected_commission, date, created_at`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.StaffName, &rec.MachineName, &rec.ActualProfit, &rec.ExpectedCommission, &rec.Date, &rec.CreatedAt)
	return rec, err
}

func (r *Repository) Insert(ctx context.Context, rec Record) (Record, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO pos_records (staff_name, machine_name, actual_profit, expected_commission, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+recordColumns,
		rec.StaffName, rec.MachineName, rec.ActualProfit, rec.ExpectedCommission, rec.Date)
	return scanRecord(row)
}

func (r *Repository) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+recordColumns+` FROM pos_records ORDER BY id DESC LIMIT $1`, limit)
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
