package services

import (
	"context"
	"strings"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

type CompanyInput struct {
	Name   string `json:"name"`
	CNPJ   string `json:"cnpj"`
	Active bool   `json:"active"`
}

// CompanyPatch carries the fields to overwrite; nil fields are kept.
type CompanyPatch struct {
	Name   *string `json:"name,omitempty"`
	CNPJ   *string `json:"cnpj,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type CompanyService struct {
	store   CompanyStore
	latency Latency
	now     func() time.Time
	idGen   func() string
}

func NewCompanyService(store CompanyStore, latency Latency) *CompanyService {
	return &CompanyService{
		store:   store,
		latency: latency,
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   func() string { return shortID(8) },
	}
}

func (s *CompanyService) GetAll(ctx context.Context) (Envelope[[]*models.Company], error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return Envelope[[]*models.Company]{}, err
	}
	return ok(s.store.ListCompanies()), nil
}

// GetByID reports an unknown id as a successful envelope with nil data.
func (s *CompanyService) GetByID(ctx context.Context, id string) (Envelope[*models.Company], error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return Envelope[*models.Company]{}, err
	}
	return ok(s.store.GetCompany(id)), nil
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (Envelope[*models.Company], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Company]{}, err
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CNPJ) == "" {
		return Envelope[*models.Company]{}, NewInvalidError("company.required")
	}
	c := &models.Company{
		ID:        s.idGen(),
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Active:    in.Active,
		CreatedAt: s.now(),
	}
	s.store.AddCompany(c)
	return okMsg(c.Clone(), "company.created"), nil
}

func (s *CompanyService) Update(ctx context.Context, id string, p CompanyPatch) (Envelope[*models.Company], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[*models.Company]{}, err
	}
	c := s.store.GetCompany(id)
	if c == nil {
		return Envelope[*models.Company]{}, NewNotFoundError("company.not_found")
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.CNPJ != nil {
		c.CNPJ = *p.CNPJ
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
	if !s.store.UpdateCompany(c) {
		return Envelope[*models.Company]{}, NewNotFoundError("company.not_found")
	}
	return okMsg(c, "company.updated"), nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) (Envelope[any], error) {
	if err := wait(ctx, s.latency.Write); err != nil {
		return Envelope[any]{}, err
	}
	if !s.store.DeleteCompany(id) {
		return Envelope[any]{}, NewNotFoundError("company.not_found")
	}
	return okMsg[any](nil, "company.deleted"), nil
}
