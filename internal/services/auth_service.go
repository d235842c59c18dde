package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/soaringjerry/bemestar/internal/models"
)

// Credential is one entry of the login allow-list.
type Credential struct {
	Email    string
	Password string
	Role     models.Role
}

// DefaultCredentials is the built-in allow-list.
var DefaultCredentials = []Credential{
	{Email: "admin@empresa.com", Password: "admin123", Role: models.RoleAdmin},
}

type allowEntry struct {
	hash []byte
	role models.Role
}

// AuthService checks credentials against a static allow-list and resolves
// the matching user from the user repository. Passwords are only kept as
// bcrypt hashes.
type AuthService struct {
	users   UserStore
	allow   map[string]allowEntry
	latency Latency
}

func NewAuthService(users UserStore, creds []Credential, latency Latency) (*AuthService, error) {
	allow := make(map[string]allowEntry, len(creds))
	for _, c := range creds {
		if !comparablePassword(c.Password) {
			return nil, fmt.Errorf("credential %s: password must be 1-72 bytes without NUL", c.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		allow[c.Email] = allowEntry{hash: hash, role: c.Role}
	}
	return &AuthService{users: users, allow: allow, latency: latency}, nil
}

// Login matches the email exactly. Any mismatch, including a credential
// with no user record behind it, is reported as auth.invalid_credentials.
func (s *AuthService) Login(ctx context.Context, creds models.LoginCredentials) (Envelope[*models.User], error) {
	if err := wait(ctx, s.latency.Login); err != nil {
		return Envelope[*models.User]{}, err
	}
	entry, found := s.allow[creds.Email]
	if !found || !comparablePassword(creds.Password) {
		return Envelope[*models.User]{}, NewUnauthorizedError("auth.invalid_credentials")
	}
	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(creds.Password)); err != nil {
		return Envelope[*models.User]{}, NewUnauthorizedError("auth.invalid_credentials")
	}
	u := s.users.FindUserByEmail(creds.Email)
	if u == nil || u.Role != entry.role {
		return Envelope[*models.User]{}, NewUnauthorizedError("auth.invalid_credentials")
	}
	return okMsg(u, "auth.login_ok"), nil
}

// comparablePassword rejects passwords bcrypt cannot tell apart from
// others: it reads at most 72 bytes and treats NUL as a terminator.
func comparablePassword(pw string) bool {
	return strings.TrimSpace(pw) != "" && len(pw) <= 72 && !strings.ContainsRune(pw, 0)
}

// Logout has nothing to revoke server side; it only pays the latency.
func (s *AuthService) Logout(ctx context.Context) error {
	return wait(ctx, s.latency.Logout)
}

// SessionLoader is the read side of the session store.
type SessionLoader interface {
	Load(ctx context.Context) (*models.User, error)
}

// CurrentUser returns the stored principal, or nil data when nobody is
// signed in.
func (s *AuthService) CurrentUser(ctx context.Context, sessions SessionLoader) (Envelope[*models.User], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*models.User]{}, err
	}
	u, err := sessions.Load(ctx)
	if err != nil {
		return Envelope[*models.User]{}, err
	}
	return ok(u), nil
}
