package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/okeb-ng/backoffice/internal/auth"
	"github.com/okeb-ng/backoffice/internal/rbac"
	"github.com/okeb-ng/backoffice/internal/shared"
	_ "github.com/okeb-ng/backoffice/testing"
)

type stubRepo struct {
	user *auth.User
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, shared.ErrNotFound
	}
	return s.user, nil
}

func (s *stubRepo) CreateSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	return nil
}

func (s *stubRepo) DeleteSession(ctx context.Context, id string) error {
	return nil
}

type stubResolver struct {
	role rbac.Role
}

func (s stubResolver) RoleForEmail(ctx context.Context, email string) (rbac.Role, error) {
	return s.role, nil
}

func hashedUser(t *testing.T, email, password string) *auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &auth.User{ID: 1, Email: email, PasswordHash: string(hash), IsActive: true}
}

func newAuthHandler(t *testing.T, repo auth.Repository, role rbac.Role) (*auth.Handler, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	sessionManager := shared.NewSessionManager(redisClient, "test_session", "secret", time.Hour, false)
	csrfManager := shared.NewCSRFManager("csrfsecret")
	handler := auth.NewHandler(nil, auth.NewService(repo), sessionManager, csrfManager, stubResolver{role: role})
	return handler, sessionManager
}

func loginRequest(t *testing.T, sessionManager *shared.SessionManager, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	sess, err := sessionManager.Load(context.Background(), req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return req.WithContext(shared.ContextWithSession(req.Context(), sess))
}

func TestLoginSuccess(t *testing.T) {
	repo := &stubRepo{user: hashedUser(t, "admin@okeb.ng", "admin-okeb-2024")}
	handler, sessionManager := newAuthHandler(t, repo, rbac.RoleAdmin)

	req := loginRequest(t, sessionManager, `{"email":"admin@okeb.ng","password":"admin-okeb-2024"}`)
	res := httptest.NewRecorder()
	handler.LoginForTest(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.Code, res.Body.String())
	}
	var payload struct {
		Email     string `json:"email"`
		Role      string `json:"role"`
		CSRFToken string `json:"csrf_token"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Email != "admin@okeb.ng" {
		t.Fatalf("expected email in response, got %q", payload.Email)
	}
	if payload.Role != "admin" {
		t.Fatalf("expected admin role, got %q", payload.Role)
	}
	if payload.CSRFToken == "" {
		t.Fatalf("expected csrf token in response")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &stubRepo{user: hashedUser(t, "admin@okeb.ng", "admin-okeb-2024")}
	handler, sessionManager := newAuthHandler(t, repo, rbac.RoleAdmin)

	req := loginRequest(t, sessionManager, `{"email":"admin@okeb.ng","password":"wrong-password"}`)
	res := httptest.NewRecorder()
	handler.LoginForTest(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", res.Code)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	handler, sessionManager := newAuthHandler(t, &stubRepo{}, rbac.RoleViewer)

	req := loginRequest(t, sessionManager, `{"email":"not-an-email","password":"short"}`)
	res := httptest.NewRecorder()
	handler.LoginForTest(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.Code)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	user := hashedUser(t, "admin@okeb.ng", "admin-okeb-2024")
	user.IsActive = false
	svc := auth.NewService(&stubRepo{user: user})

	_, err := svc.Authenticate(context.Background(), "admin@okeb.ng", "admin-okeb-2024")
	if err == nil {
		t.Fatalf("expected error for inactive user")
	}
}

func TestAuthenticateNormalizesEmail(t *testing.T) {
	svc := auth.NewService(&stubRepo{user: hashedUser(t, "admin@okeb.ng", "admin-okeb-2024")})

	user, err := svc.Authenticate(context.Background(), "  Admin@OKEB.ng ", "admin-okeb-2024")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "admin@okeb.ng" {
		t.Fatalf("unexpected email %q", user.Email)
	}
}
