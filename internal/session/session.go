// Package session persists the signed-in principal across process
// restarts. A Store pairs a key-value Backend with a Codec and keeps the
// principal under a single key.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soaringjerry/bemestar/internal/models"
)

// Key is the backend key the principal is stored under.
const Key = "currentUser"

// SessionStore is what the auth context needs from persistence.
type SessionStore interface {
	Save(ctx context.Context, u *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// Backend is a durable string key-value store. Get reports found=false for
// an absent key; Delete of an absent key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Codec turns a principal into the stored string and back.
type Codec interface {
	Encode(u *models.User) (string, error)
	Decode(s string) (*models.User, error)
}

var errMalformed = errors.New("malformed session value")

type Store struct {
	backend Backend
	codec   Codec
	log     *slog.Logger
}

func New(backend Backend, codec Codec, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, codec: codec, log: logger}
}

func (s *Store) Save(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.Clear(ctx)
	}
	v, err := s.codec.Encode(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.backend.Set(ctx, Key, v); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load returns nil without error when no principal is stored. A value that
// does not decode to a valid principal is discarded.
func (s *Store) Load(ctx context.Context) (*models.User, error) {
	v, found, err := s.backend.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}
	u, err := s.codec.Decode(v)
	if err == nil {
		err = validate(u)
	}
	if err != nil {
		s.log.Warn("discarding stored session", "error", err)
		if derr := s.backend.Delete(ctx, Key); derr != nil {
			return nil, fmt.Errorf("discard session: %w", derr)
		}
		return nil, nil
	}
	return u, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func validate(u *models.User) error {
	if u == nil || u.ID == "" {
		return fmt.Errorf("%w: missing id", errMalformed)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: role %q", errMalformed, u.Role)
	}
	return nil
}
