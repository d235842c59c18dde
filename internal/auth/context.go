// Package auth holds the console's single authentication state and the
// login/logout flow around it.
package auth

import (
	"context"
	"log/slog"
	"sync"

	"github.com/soaringjerry/bemestar/internal/models"
	"github.com/soaringjerry/bemestar/internal/services"
	"github.com/soaringjerry/bemestar/internal/session"
)

// Authenticator is the part of the auth service the context drives.
type Authenticator interface {
	Login(ctx context.Context, creds models.LoginCredentials) (services.Envelope[*models.User], error)
	Logout(ctx context.Context) error
}

// Context owns the AuthState. It starts loading and settles once Start has
// read the session store.
type Context struct {
	svc      Authenticator
	sessions session.SessionStore
	log      *slog.Logger

	mu    sync.RWMutex
	state models.AuthState
}

func New(svc Authenticator, sessions session.SessionStore, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		svc:      svc,
		sessions: sessions,
		log:      logger,
		state:    models.AuthState{IsLoading: true},
	}
}

// Start restores a persisted principal. Storage failures are logged and
// leave the console signed out.
func (c *Context) Start(ctx context.Context) {
	u, err := c.sessions.Load(ctx)
	if err != nil {
		c.log.Error("restore session", "error", err)
		u = nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if u != nil {
		c.state = models.AuthState{User: u, IsAuthenticated: true}
		c.log.Info("session restored", "user_id", u.ID, "role", u.Role)
		return
	}
	c.state = models.AuthState{}
}

// Login returns the service error unchanged on failure; the user and the
// authenticated flag are left as they were.
func (c *Context) Login(ctx context.Context, creds models.LoginCredentials) error {
	c.setLoading(true)
	env, err := c.svc.Login(ctx, creds)
	if err != nil {
		c.setLoading(false)
		return err
	}
	u := env.Data
	if err := c.sessions.Save(ctx, u); err != nil {
		c.log.Error("persist session", "error", err)
	}
	c.mu.Lock()
	c.state = models.AuthState{User: u.Clone(), IsAuthenticated: true}
	c.mu.Unlock()
	c.log.Info("login", "user_id", u.ID, "role", u.Role)
	return nil
}

// Logout always ends signed out, whatever the service or the store say.
func (c *Context) Logout(ctx context.Context) {
	if err := c.svc.Logout(ctx); err != nil {
		c.log.Warn("logout", "error", err)
	}
	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Error("clear session", "error", err)
	}
	c.mu.Lock()
	c.state = models.AuthState{}
	c.mu.Unlock()
}

// HasRole is false when nobody is signed in.
func (c *Context) HasRole(roles ...models.Role) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state.User == nil {
		return false
	}
	return models.NewRoleSet(roles...).Contains(c.state.User.Role)
}

// State returns a copy of the current state.
func (c *Context) State() models.AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	s.User = s.User.Clone()
	return s
}

func (c *Context) setLoading(v bool) {
	c.mu.Lock()
	c.state.IsLoading = v
	c.mu.Unlock()
}
