package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/gridrunner/internal/entity"
	"github.com/samdwyer/gridrunner/internal/world"
)

// fixtureSession builds a 3x3 session by hand: floor at the center,
// an exit directly above it, walls everywhere else.
func fixtureSession(t *testing.T) *Session {
	t.Helper()

	m, err := world.NewMap(3, 3)
	if err != nil {
		t.Fatalf("NewMap error: %v", err)
	}
	if err := m.SetTile(1, 1, world.TileFloor); err != nil {
		t.Fatalf("SetTile error: %v", err)
	}
	if err := m.SetTile(1, 0, world.TileExit); err != nil {
		t.Fatalf("SetTile error: %v", err)
	}

	return &Session{
		Map:     m,
		Start:   world.Point{X: 1, Y: 1},
		Player:  entity.NewPlayer(1, 1),
		builder: world.NewBuilder(rand.New(rand.NewSource(77))),
		width:   world.DefaultWidth,
		height:  world.DefaultHeight,
	}
}

func TestSessionMoveBlockedByWall(t *testing.T) {
	s := fixtureSession(t)

	moved, err := s.TryMove(context.Background(), -1, 0)
	if err != nil {
		t.Fatalf("TryMove error: %v", err)
	}
	if moved {
		t.Error("TryMove into a wall reported success")
	}
	if x, y := s.Player.Position(); x != 1 || y != 1 {
		t.Errorf("Player moved to (%d,%d); want (1,1)", x, y)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d; want 0", s.Score)
	}
}

func TestSessionExitScoresAndAdvances(t *testing.T) {
	s := fixtureSession(t)
	oldMap := s.Map

	moved, err := s.TryMove(context.Background(), 0, -1)
	if err != nil {
		t.Fatalf("TryMove error: %v", err)
	}
	if !moved {
		t.Fatal("TryMove onto the exit reported no movement")
	}
	if s.Score != 1 {
		t.Errorf("Score = %d; want 1", s.Score)
	}
	if s.Map == oldMap {
		t.Error("Map was not regenerated after reaching the exit")
	}
	if x, y := s.Player.Position(); x != s.Start.X || y != s.Start.Y {
		t.Errorf("Player at (%d,%d); want the new start (%d,%d)", x, y, s.Start.X, s.Start.Y)
	}
}

func TestNewSessionPlacesPlayerAtStart(t *testing.T) {
	builder := world.NewBuilder(rand.New(rand.NewSource(5)))
	s, err := NewSession(context.Background(), builder, world.DefaultWidth, world.DefaultHeight)
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}

	if x, y := s.Player.Position(); x != s.Start.X || y != s.Start.Y {
		t.Errorf("Player at (%d,%d); want start (%d,%d)", x, y, s.Start.X, s.Start.Y)
	}
	if !s.Map.IsPassable(s.Start.X, s.Start.Y) {
		t.Error("Start tile is not passable")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Seed == 0 {
		t.Error("Zero seed was not replaced with a time-based one")
	}
	if cfg.Width != world.DefaultWidth || cfg.Height != world.DefaultHeight {
		t.Errorf("Dimensions = %dx%d; want %dx%d", cfg.Width, cfg.Height, world.DefaultWidth, world.DefaultHeight)
	}

	cfg = Config{Seed: 9, Width: 30, Height: 12}.withDefaults()
	if cfg.Seed != 9 || cfg.Width != 30 || cfg.Height != 12 {
		t.Errorf("Explicit config was altered: %+v", cfg)
	}
}
