package bakery

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okeb-ng/backoffice/internal/platform/httpx"
	"github.com/okeb-ng/backoffice/internal/shared"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists the bakery's three tables.
type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx pgx.Tx) *Repository {
	return &Repository{db: tx}
}

// --- products ---

func (r *Repository) InsertProduct(ctx context.Context, name string, price float64) (Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `
		INSERT INTO bakery_products (name, price)
		VALUES ($1, $2)
		RETURNING id, name, price, created_at`, name, price).
		Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return Product{}, httpx.ErrDuplicate
	}
	return p, err
}

func (r *Repository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, created_at FROM bakery_products ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bakery_products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// --- sales ---

const saleColumns = `id, staff_name, bread_type, opening_stock, closing_stock, sold_quantity, price_per_loaf, total_amount, expenses, date, created_at`

func scanSale(row pgx.Row) (Sale, error) {
	var s Sale
	err := row.Scan(&s.ID, &s.StaffName, &s.BreadType, &s.OpeningStock, &s.ClosingStock, &s.SoldQuantity, &s.PricePerLoaf, &s.TotalAmount, &s.Expenses, &s.Date, &s.CreatedAt)
	return s, err
}

func (r *Repository) InsertSale(ctx context.Context, s Sale) (Sale, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO bakery_sales (staff_name, bread_type, opening_stock, closing_stock, sold_quantity, price_per_loaf, total_amount, expenses, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+saleColumns,
		s.StaffName, s.BreadType, s.OpeningStock, s.ClosingStock, s.SoldQuantity, s.PricePerLoaf, s.TotalAmount, s.Expenses, s.Date)
	return scanSale(row)
}

func (r *Repository) ListSales(ctx context.Context, limit int) ([]Sale, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM bakery_sales ORDER BY id DESC LIMIT $1`, limit)
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

// AllSales returns the full sales history for the stock projection.
func (r *Repository) AllSales(ctx context.Context) ([]Sale, error) {
	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM bakery_sales ORDER BY id ASC`)
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

// --- production ---

func (r *Repository) InsertProduction(ctx context.Context, log ProductionLog) (ProductionLog, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO bakery_production (baker_name, flour_used, produced_items, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		log.BakerName, log.FlourUsed, log.ProducedItems, log.Date).
		Scan(&log.ID, &log.CreatedAt)
	return log, err
}

func (r *Repository) ListProduction(ctx context.Context, limit int) ([]ProductionLog, error) {
	if limit <= 0 {
		limit = 200
	}
	return r.queryProduction(ctx,
		`SELECT id, baker_name, flour_used, produced_items, date, created_at
		 FROM bakery_production ORDER BY id DESC LIMIT $1`, limit)
}

// AllProduction returns the full production history for the stock
// projection.
func (r *Repository) AllProduction(ctx context.Context) ([]ProductionLog, error) {
	return r.queryProduction(ctx,
		`SELECT id, baker_name, flour_used, produced_items, date, created_at
		 FROM bakery_production ORDER BY id ASC`)
}

func (r *Repository) queryProduction(ctx context.Context, q string, args ...any) ([]ProductionLog, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProductionLog
	for rows.Next() {
		var log ProductionLog
		if err := rows.Scan(&log.ID, &log.BakerName, &log.FlourUsed, &log.ProducedItems, &log.Date, &log.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, log)
	}
	return out, rows.Err()
}
