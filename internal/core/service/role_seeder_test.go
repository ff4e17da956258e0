package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
)

type stubRoleRepo struct {
	rows    map[uint]domain.Role
	creates int
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{rows: make(map[uint]domain.Role)}
}

func (r *stubRoleRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *stubRoleRepo) Create(_ context.Context, id uint, role domain.Role) error {
	r.rows[id] = role
	r.creates++
	return nil
}

func TestSeedRoles_CreatesAllKeyedByOrdinalPlusOne(t *testing.T) {
	repo := newStubRoleRepo()

	created, err := SeedRoles(context.Background(), repo, zerolog.Nop())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if len(created) != len(domain.AllRoles()) {
		t.Fatalf("expected %d created roles, got %v", len(domain.AllRoles()), created)
	}
	if len(repo.rows) != len(domain.AllRoles()) {
		t.Fatalf("expected %d rows, got %d", len(domain.AllRoles()), len(repo.rows))
	}
	for _, role := range domain.AllRoles() {
		got, ok := repo.rows[uint(role)+1]
		if !ok {
			t.Fatalf("role %s missing at key %d", role, uint(role)+1)
		}
		if got != role {
			t.Fatalf("key %d holds %s, want %s", uint(role)+1, got, role)
		}
	}
}

func TestSeedRoles_Idempotent(t *testing.T) {
	repo := newStubRoleRepo()

	if _, err := SeedRoles(context.Background(), repo, zerolog.Nop()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	first := repo.creates

	created, err := SeedRoles(context.Background(), repo, zerolog.Nop())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if repo.creates != first {
		t.Fatalf("second seed created %d extra rows", repo.creates-first)
	}
	if len(created) != 0 {
		t.Fatalf("second seed reported created roles %v, want none", created)
	}
	if len(repo.rows) != len(domain.AllRoles()) {
		t.Fatalf("expected %d rows after reseeding, got %d", len(domain.AllRoles()), len(repo.rows))
	}
}
