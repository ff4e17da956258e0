package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

func TestUserUpdate_SelfAllowed(t *testing.T) {
	repo := newStubUserRepo()
	user := mustSeedUser(t, repo, "kid", "kid@example.com", "password-1", domain.RoleStudent)
	svc := NewUserService(repo, zerolog.Nop())

	newName := "kid2"
	actor := domain.Principal{UserID: user.ID, Role: domain.RoleStudent}
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Username: &newName}, actor)
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if updated.Username != "kid2" {
		t.Errorf("username = %q, want kid2", updated.Username)
	}
}

func TestUserUpdate_OtherAccountForbidden(t *testing.T) {
	repo := newStubUserRepo()
	victim := mustSeedUser(t, repo, "victim", "victim@example.com", "password-1", domain.RoleStudent)
	svc := NewUserService(repo, zerolog.Nop())

	newName := "hacked"
	actor := domain.Principal{UserID: victim.ID + 1, Role: domain.RoleTeacher}
	_, err := svc.Update(context.Background(), victim.ID, ports.UpdateUserInput{Username: &newName}, actor)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserDeactivate_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	target := mustSeedUser(t, repo, "target", "target@example.com", "password-1", domain.RoleStudent)
	svc := NewUserService(repo, zerolog.Nop())

	teacher := domain.Principal{UserID: 50, Role: domain.RoleTeacher}
	if err := svc.Deactivate(context.Background(), target.ID, teacher); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for teacher, got %v", err)
	}

	admin := domain.Principal{UserID: 51, Role: domain.RoleAdmin}
	if err := svc.Deactivate(context.Background(), target.ID, admin); err != nil {
		t.Fatalf("deactivate as admin: %v", err)
	}

	if _, err := svc.Get(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deactivated user still resolvable: %v", err)
	}
}

func TestUserDeactivate_SelfRejected(t *testing.T) {
	repo := newStubUserRepo()
	admin := mustSeedUser(t, repo, "root", "root@example.com", "password-1", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	actor := domain.Principal{UserID: admin.ID, Role: domain.RoleAdmin}
	if err := svc.Deactivate(context.Background(), admin.ID, actor); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestUserList_ClampsPaging(t *testing.T) {
	repo := newStubUserRepo()
	mustSeedUser(t, repo, "a", "a@example.com", "password-1", domain.RoleStudent)
	svc := NewUserService(repo, zerolog.Nop())

	result, err := svc.List(context.Background(), 0, 5000)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want 1", result.Page)
	}
	if result.Limit != defaultPageLimit {
		t.Errorf("limit = %d, want %d", result.Limit, defaultPageLimit)
	}
	if result.Total != 1 || result.TotalPages != 1 {
		t.Errorf("total = %d, pages = %d, want 1/1", result.Total, result.TotalPages)
	}
}
