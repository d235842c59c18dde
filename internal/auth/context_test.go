package auth

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
	"github.com/soaringjerry/bemestar/internal/session"
	"github.com/soaringjerry/bemestar/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	users := store.NewMemoryStore()
	users.AddUser(&models.User{ID: "1", Name: "Administrador Sistema", Email: "admin@empresa.com", Role: models.RoleAdmin, CompanyID: "1"})
	svc, err := services.NewAuthService(users, services.DefaultCredentials, services.Latency{})
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	return svc
}

var adminCreds = models.LoginCredentials{Email: "admin@empresa.com", Password: "admin123"}

func TestStartsLoading(t *testing.T) {
	c := New(newAuthService(t), session.New(session.NewMemoryBackend(), session.JSONCodec{}, testLogger()), testLogger())
	if !c.State().IsLoading {
		t.Fatalf("fresh context should be loading")
	}
	c.Start(context.Background())
	st := c.State()
	if st.IsLoading || st.IsAuthenticated || st.User != nil {
		t.Fatalf("after start with empty store: %+v", st)
	}
}

func TestLoginSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	backend := session.NewMemoryBackend()
	svc := newAuthService(t)

	first := New(svc, session.New(backend, session.JSONCodec{}, testLogger()), testLogger())
	first.Start(ctx)
	if err := first.Login(ctx, adminCreds); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !first.HasRole(models.RoleAdmin) || first.HasRole(models.RoleGestor, models.RoleUsuario) {
		t.Fatalf("unexpected roles after login")
	}

	second := New(svc, session.New(backend, session.JSONCodec{}, testLogger()), testLogger())
	second.Start(ctx)
	st := second.State()
	if !st.IsAuthenticated || st.User == nil || st.User.ID != "1" {
		t.Fatalf("restart did not restore session: %+v", st)
	}
}

func TestFailedLoginStaysLoggedOut(t *testing.T) {
	ctx := context.Background()
	backend := session.NewMemoryBackend()
	c := New(newAuthService(t), session.New(backend, session.JSONCodec{}, testLogger()), testLogger())
	c.Start(ctx)

	err := c.Login(ctx, models.LoginCredentials{Email: "admin@empresa.com", Password: "wrong"})
	if !services.IsUnauthorized(err) {
		t.Fatalf("want unauthorized, got %v", err)
	}
	st := c.State()
	if st.IsAuthenticated || st.User != nil || st.IsLoading {
		t.Fatalf("state after failed login: %+v", st)
	}
	if _, found, _ := backend.Get(ctx, session.Key); found {
		t.Fatalf("failed login persisted a session")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := session.NewMemoryBackend()
	c := New(newAuthService(t), session.New(backend, session.JSONCodec{}, testLogger()), testLogger())
	c.Start(ctx)
	if err := c.Login(ctx, adminCreds); err != nil {
		t.Fatalf("login: %v", err)
	}
	c.Logout(ctx)
	once := c.State()
	c.Logout(ctx)
	twice := c.State()
	if once != twice || once.IsAuthenticated || once.User != nil || once.IsLoading {
		t.Fatalf("logout not idempotent: %+v vs %+v", once, twice)
	}
	if _, found, _ := backend.Get(ctx, session.Key); found {
		t.Fatalf("session survived logout")
	}
}

type failingAuth struct{ Authenticator }

func (failingAuth) Logout(context.Context) error { return errors.New("boom") }

type brokenStore struct{}

func (brokenStore) Save(context.Context, *models.User) error   { return errors.New("disk full") }
func (brokenStore) Load(context.Context) (*models.User, error) { return nil, errors.New("io") }
func (brokenStore) Clear(context.Context) error                 { return errors.New("io") }

func TestLogoutIgnoresFailures(t *testing.T) {
	ctx := context.Background()
	c := New(failingAuth{newAuthService(t)}, brokenStore{}, testLogger())
	c.Start(ctx)
	if err := c.Login(ctx, adminCreds); err != nil {
		t.Fatalf("login should succeed even when persisting fails: %v", err)
	}
	if !c.State().IsAuthenticated {
		t.Fatalf("persist failure should not block login")
	}
	c.Logout(ctx)
	if c.State().IsAuthenticated {
		t.Fatalf("logout must reset state")
	}
}

func TestHasRoleWithoutUser(t *testing.T) {
	c := New(newAuthService(t), session.New(session.NewMemoryBackend(), session.JSONCodec{}, testLogger()), testLogger())
	c.Start(context.Background())
	for _, r := range models.AllRoles {
		if c.HasRole(r) {
			t.Fatalf("HasRole(%s) true without user", r)
		}
	}
	if c.HasRole(models.AllRoles...) {
		t.Fatalf("HasRole(all) true without user")
	}
}

func TestStateIsCopy(t *testing.T) {
	ctx := context.Background()
	c := New(newAuthService(t), session.New(session.NewMemoryBackend(), session.JSONCodec{}, testLogger()), testLogger())
	c.Start(ctx)
	_ = c.Login(ctx, adminCreds)
	st := c.State()
	st.User.Role = models.RoleUsuario
	if !c.HasRole(models.RoleAdmin) {
		t.Fatalf("mutating State() leaked into the context")
	}
}
