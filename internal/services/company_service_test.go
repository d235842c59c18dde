package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/soaringjerry/bemestar/internal/models"
)

func seededCompanies() *stubStore {
	s := newStubStore()
	s.AddCompany(&models.Company{ID: "1", Name: "Empresa ABC Ltda", CNPJ: "12.345.678/0001-90", Active: true})
	s.AddCompany(&models.Company{ID: "2", Name: "Tech Solutions SA", CNPJ: "98.765.432/0001-10", Active: true})
	return s
}

func TestCompanyCreateAssignsID(t *testing.T) {
	store := newStubStore()
	svc := NewCompanyService(store, Latency{})
	svc.now = func() time.Time { return time.Unix(100, 0) }

	env, err := svc.Create(context.Background(), CompanyInput{Name: "Nova", CNPJ: "11.111.111/0001-11", Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !env.Success || env.Data.ID == "" || env.Message != "company.created" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if !env.Data.CreatedAt.Equal(time.Unix(100, 0)) {
		t.Fatalf("createdAt = %v", env.Data.CreatedAt)
	}
	if len(store.companies) != 1 {
		t.Fatalf("store has %d companies", len(store.companies))
	}

	if _, err := svc.Create(context.Background(), CompanyInput{Name: " "}); err == nil {
		t.Fatalf("expected invalid error for missing fields")
	}
}

func TestCompanyIDsNotReused(t *testing.T) {
	store := newStubStore()
	svc := NewCompanyService(store, Latency{})
	ctx := context.Background()
	a, _ := svc.Create(ctx, CompanyInput{Name: "A", CNPJ: "1"})
	if _, err := svc.Delete(ctx, a.Data.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	b, _ := svc.Create(ctx, CompanyInput{Name: "B", CNPJ: "2"})
	if a.Data.ID == b.Data.ID {
		t.Fatalf("id %q reused after delete", a.Data.ID)
	}
}

func TestCompanyGetByIDMissing(t *testing.T) {
	svc := NewCompanyService(seededCompanies(), Latency{})
	env, err := svc.GetByID(context.Background(), "404")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !env.Success || env.Data != nil {
		t.Fatalf("want success with nil data, got %+v", env)
	}
}

func TestCompanyMissingIDLeavesStoreUntouched(t *testing.T) {
	store := seededCompanies()
	svc := NewCompanyService(store, Latency{})
	before := store.ListCompanies()
	name := "x"

	_, err := svc.Update(context.Background(), "404", CompanyPatch{Name: &name})
	if !IsNotFound(err) {
		t.Fatalf("update: want not_found, got %v", err)
	}
	_, err = svc.Delete(context.Background(), "404")
	if !IsNotFound(err) {
		t.Fatalf("delete: want not_found, got %v", err)
	}
	if !reflect.DeepEqual(before, store.ListCompanies()) {
		t.Fatalf("store changed on missing id")
	}
}

func TestCompanyUpdateMerges(t *testing.T) {
	store := seededCompanies()
	svc := NewCompanyService(store, Latency{})
	inactive := false
	env, err := svc.Update(context.Background(), "1", CompanyPatch{Active: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if env.Data.Active || env.Data.Name != "Empresa ABC Ltda" {
		t.Fatalf("patch not merged: %+v", env.Data)
	}
	if got := store.GetCompany("1"); got.Active {
		t.Fatalf("store not updated")
	}
}

func TestLatencyHonoursCancel(t *testing.T) {
	svc := NewCompanyService(seededCompanies(), DefaultLatency())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	_, err := svc.GetAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Fatalf("cancelled call still slept")
	}
}

func TestLatencyScale(t *testing.T) {
	l := DefaultLatency().Scale(0.5)
	if l.Login != 400*time.Millisecond {
		t.Fatalf("scaled login = %v", l.Login)
	}
	if (DefaultLatency().Scale(0) != Latency{}) {
		t.Fatalf("scale 0 should disable latency")
	}
}
