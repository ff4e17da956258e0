package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type stubGameRepo struct {
	games   map[uint]*domain.Game
	deleted map[uint]bool
	nextID  uint
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[uint]*domain.Game), deleted: make(map[uint]bool)}
}

func cloneGame(g *domain.Game) *domain.Game {
	clone := *g
	return &clone
}

func (r *stubGameRepo) Create(_ context.Context, g *domain.Game) (*domain.Game, error) {
	r.nextID++
	copy := cloneGame(g)
	copy.ID = r.nextID
	r.games[copy.ID] = cloneGame(copy)
	return cloneGame(copy), nil
}

func (r *stubGameRepo) FindByID(_ context.Context, id uint) (*domain.Game, error) {
	g, ok := r.games[id]
	if !ok || r.deleted[id] {
		return nil, domain.ErrGameNotFound
	}
	return cloneGame(g), nil
}

func (r *stubGameRepo) List(_ context.Context, filter ports.GameFilter) ([]domain.Game, error) {
	var out []domain.Game
	for id, g := range r.games {
		if r.deleted[id] {
			continue
		}
		if filter.Kind != "" && g.Kind != filter.Kind {
			continue
		}
		if filter.Difficulty != "" && g.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, *cloneGame(g))
	}
	return out, nil
}

func (r *stubGameRepo) Update(_ context.Context, g *domain.Game) error {
	if _, ok := r.games[g.ID]; !ok {
		return domain.ErrGameNotFound
	}
	r.games[g.ID] = cloneGame(g)
	return nil
}

func (r *stubGameRepo) SoftDelete(_ context.Context, id uint) error {
	r.deleted[id] = true
	return nil
}

func TestGameService_Create_StudentForbidden(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title: "Fraction Frenzy", Kind: "fractions", Difficulty: domain.DifficultyEasy,
	}, studentActor)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGameService_Create_TeacherOK(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	game, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title: "Fraction Frenzy", Kind: "fractions", Difficulty: domain.DifficultyMedium,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if game.CreatedBy != teacherActor.UserID {
		t.Fatalf("expected creator %d, got %d", teacherActor.UserID, game.CreatedBy)
	}
}

func TestGameService_Create_InvalidDifficulty(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title: "X", Kind: "y", Difficulty: "nightmare",
	}, teacherActor)
	if !errors.Is(err, domain.ErrInvalidDifficulty) {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestGameService_Update_OnlyCreatorOrAdmin(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	game, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title: "Times Tables", Kind: "multiplication", Difficulty: domain.DifficultyEasy,
	}, teacherActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Times Tables II"
	other := domain.Principal{UserID: 42, Role: domain.RoleTeacher}
	if _, err := svc.Update(context.Background(), game.ID, ports.UpdateGameInput{Title: &title}, other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-creator, got %v", err)
	}

	if _, err := svc.Update(context.Background(), game.ID, ports.UpdateGameInput{Title: &title}, adminActor); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestGameService_List_Filters(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyHard} {
		if _, err := svc.Create(context.Background(), ports.CreateGameInput{
			Title: "G-" + string(d), Kind: "geometry", Difficulty: d,
		}, teacherActor); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	games, err := svc.List(context.Background(), ports.GameFilter{Difficulty: domain.DifficultyHard})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 1 || games[0].Difficulty != domain.DifficultyHard {
		t.Fatalf("unexpected filter result: %+v", games)
	}
}
