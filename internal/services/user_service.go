package services

import (
	"context"
	"strings"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

type UserInput struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CompanyID string      `json:"companyId"`
	Sector    string      `json:"sector,omitempty"`
}

type UserPatch struct {
	Name      *string      `json:"name,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Role      *models.Role `json:"role,omitempty"`
	CompanyID *string      `json:"companyId,omitempty"`
	Sector    *string      `json:"sector,omitempty"`
}

type UserService struct {
	store   UserStore
	latency Latency
	now     func() time.Time
	idGen   func() string
}

func NewUserService(store UserStore, latency Latency) *UserService {
	return &UserService{
		store:   store,
		latency: latency,
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   func() string { return shortID(8) },
	}
}

func (s *UserService) GetAll(ctx context.Context) (Envelope[[]*models.User], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.User]{}, err
	}
	return ok(s.store.ListUsers()), nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (Envelope[*models.User], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*models.User]{}, err
	}
	return ok(s.store.GetUser(id)), nil
}

// Create does not check for duplicate emails or unknown companies.
func (s *UserService) Create(ctx context.Context, in UserInput) (Envelope[*models.User], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.User]{}, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return Envelope[*models.User]{}, NewInvalidError("user.required")
	}
	if !in.Role.Valid() {
		return Envelope[*models.User]{}, NewInvalidError("user.invalid_role")
	}
	u := &models.User{
		ID:        s.idGen(),
		Name:      in.Name,
		Email:     strings.TrimSpace(in.Email),
		Role:      in.Role,
		CompanyID: in.CompanyID,
		Sector:    in.Sector,
		CreatedAt: s.now(),
	}
	s.store.AddUser(u)
	return okMsg(u.Clone(), "user.created"), nil
}

func (s *UserService) Update(ctx context.Context, id string, p UserPatch) (Envelope[*models.User], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.User]{}, err
	}
	u := s.store.GetUser(id)
	if u == nil {
		return Envelope[*models.User]{}, NewNotFoundError("user.not_found")
	}
	if p.Role != nil && !p.Role.Valid() {
		return Envelope[*models.User]{}, NewInvalidError("user.invalid_role")
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.CompanyID != nil {
		u.CompanyID = *p.CompanyID
	}
	if p.Sector != nil {
		u.Sector = *p.Sector
	}
	if !s.store.UpdateUser(u) {
		return Envelope[*models.User]{}, NewNotFoundError("user.not_found")
	}
	return okMsg(u, "user.updated"), nil
}

func (s *UserService) Delete(ctx context.Context, id string) (Envelope[any], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[any]{}, err
	}
	if !s.store.DeleteUser(id) {
		return Envelope[any]{}, NewNotFoundError("user.not_found")
	}
	return okMsg[any](nil, "user.deleted"), nil
}
