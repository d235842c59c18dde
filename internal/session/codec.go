package session

import (
	"encoding/json"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/soaringjerry/bemestar/internal/models"
)

// JSONCodec stores the principal as plain JSON.
type JSONCodec struct{}

func (JSONCodec) Encode(u *models.User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec) Decode(s string) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

type sessionClaims struct {
	User models.User `json:"user"`
	jwt.RegisteredClaims
}

// TokenCodec signs the principal into an HS256 token. Tokens carry no
// expiry; a session lasts until logout.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &TokenCodec{secret: []byte(secret), now: time.Now}, nil
}

func (c *TokenCodec) Encode(u *models.User) (string, error) {
	claims := sessionClaims{
		User: *u,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *TokenCodec) Decode(s string) (*models.User, error) {
	t, err := jwt.ParseWithClaims(s, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*sessionClaims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject != claims.User.ID {
		return nil, errors.New("token subject mismatch")
	}
	return &claims.User, nil
}
