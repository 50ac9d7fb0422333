package rbac

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Service resolves roles from the user_roles table.
type Service struct {
	pool *pgxpool.Pool
}

// NewService constructs a Service backed by the provided pool.
func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// RoleForEmail looks up the role assigned to an email. Emails without an
// assignment default to viewer so a missing row can never widen access.
func (s *Service) RoleForEmail(ctx context.Context, email string) (Role, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return RoleViewer, nil
	}
	var role string
	err := s.pool.QueryRow(ctx, `SELECT role FROM user_roles WHERE email = $1`, email).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RoleViewer, nil
		}
		return RoleViewer, err
	}
	r := Role(role)
	if !r.Valid() {
		return RoleViewer, nil
	}
	return r, nil
}

// Assign upserts a role for an email.
func (s *Service) Assign(ctx context.Context, email string, role Role) error {
	if !role.Valid() {
		return errors.New("rbac: unknown role")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("rbac: email required")
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_roles (email, role) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role`,
		email, string(role))
	return err
}
