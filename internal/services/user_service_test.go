package services

import (
	"context"
	"testing"

	"github.com/soaringjerry/bemestar/internal/models"
)

func TestUserCreateValidation(t *testing.T) {
	svc := NewUserService(newStubStore(), Latency{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, UserInput{Name: "Ana", Email: "ana@empresa.com", Role: "root"}); err == nil {
		t.Fatalf("expected invalid role error")
	}
	if _, err := svc.Create(ctx, UserInput{Email: "ana@empresa.com", Role: models.RoleGestor}); err == nil {
		t.Fatalf("expected required error")
	}
	env, err := svc.Create(ctx, UserInput{Name: "Ana", Email: " ana@empresa.com ", Role: models.RoleGestor, CompanyID: "1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if env.Data.Email != "ana@empresa.com" || env.Data.Role != models.RoleGestor {
		t.Fatalf("unexpected user %+v", env.Data)
	}
}

func TestUserUpdateRejectsInvalidRole(t *testing.T) {
	store := newStubStore()
	store.AddUser(&models.User{ID: "1", Name: "Admin", Email: "admin@empresa.com", Role: models.RoleAdmin})
	svc := NewUserService(store, Latency{})
	bad := models.Role("root")
	if _, err := svc.Update(context.Background(), "1", UserPatch{Role: &bad}); err == nil {
		t.Fatalf("expected error")
	}
	if store.GetUser("1").Role != models.RoleAdmin {
		t.Fatalf("role changed on rejected patch")
	}
	sector := "TI"
	env, err := svc.Update(context.Background(), "1", UserPatch{Sector: &sector})
	if err != nil || env.Data.Sector != "TI" {
		t.Fatalf("update: %+v %v", env, err)
	}
}
