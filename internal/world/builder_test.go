package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/gridrunner/internal/pathfind"
)

func buildWithSeed(t *testing.T, seed int64, width, height int) (*Map, Point) {
	t.Helper()
	b := NewBuilder(rand.New(rand.NewSource(seed)))
	m, start, err := b.Build(context.Background(), width, height)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return m, start
}

func TestBuildReproducibility(t *testing.T) {
	seed := int64(12345)

	m1, start1 := buildWithSeed(t, seed, DefaultWidth, DefaultHeight)
	m2, start2 := buildWithSeed(t, seed, DefaultWidth, DefaultHeight)

	if start1 != start2 {
		t.Fatalf("Start mismatch: %+v != %+v", start1, start2)
	}

	m1.Each(func(idx int, p Point, tile Tile) {
		other, err := m2.TileAt(p.X, p.Y)
		if err != nil {
			t.Fatalf("TileAt(%d,%d) error: %v", p.X, p.Y, err)
		}
		if tile != other {
			t.Errorf("Tile mismatch at (%d,%d): %c != %c", p.X, p.Y, tile.Rune(), other.Rune())
		}
	})
}

func TestBuildDifferentSeeds(t *testing.T) {
	m1, _ := buildWithSeed(t, 12345, DefaultWidth, DefaultHeight)
	m2, _ := buildWithSeed(t, 54321, DefaultWidth, DefaultHeight)

	identical := true
	m1.Each(func(idx int, p Point, tile Tile) {
		other, _ := m2.TileAt(p.X, p.Y)
		if tile != other {
			identical = false
		}
	})

	if identical {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestBuildExactlyOneReachableExit(t *testing.T) {
	m, start := buildWithSeed(t, 99, DefaultWidth, DefaultHeight)

	exits := 0
	exitIdx := -1
	m.Each(func(idx int, p Point, tile Tile) {
		if tile == TileExit {
			exits++
			exitIdx = idx
		}
	})
	if exits != 1 {
		t.Fatalf("Exit count = %d; want exactly 1", exits)
	}

	dist := pathfind.BFS(m, m.Index(start.X, start.Y))
	if dist[exitIdx] <= 0 {
		t.Errorf("Exit at index %d has distance %d from start; want a positive finite path", exitIdx, dist[exitIdx])
	}
}

func TestBuildExitIsFarthestTile(t *testing.T) {
	m, start := buildWithSeed(t, 7, DefaultWidth, DefaultHeight)

	dist := pathfind.BFS(m, m.Index(start.X, start.Y))

	exitIdx := -1
	m.Each(func(idx int, p Point, tile Tile) {
		if tile == TileExit {
			exitIdx = idx
		}
	})
	if exitIdx < 0 {
		t.Fatal("No exit tile found")
	}

	for idx, d := range dist {
		if d > dist[exitIdx] {
			t.Errorf("Tile %d has distance %d > exit distance %d", idx, d, dist[exitIdx])
		}
		// Lowest-index tie break.
		if d == dist[exitIdx] && idx < exitIdx {
			t.Errorf("Tile %d ties exit distance %d but has a lower index than the exit (%d)", idx, d, exitIdx)
		}
	}
}

func TestBuildDefaultScenario(t *testing.T) {
	m, start := buildWithSeed(t, 2023, 14, 21)

	if (start != Point{X: 7, Y: 10}) {
		t.Errorf("Start = %+v; want the grid center (7,10)", start)
	}

	startTile, err := m.TileAt(start.X, start.Y)
	if err != nil {
		t.Fatalf("TileAt(start) error: %v", err)
	}
	if startTile != TileFloor {
		t.Errorf("Start tile = %c; want floor", startTile.Rune())
	}

	floors := 0
	m.Each(func(idx int, p Point, tile Tile) {
		if tile == TileFloor {
			floors++
		}
	})
	if floors == 0 {
		t.Error("Build produced no floor tiles")
	}

	// Full connectivity: every floor tile is reachable from the start.
	dist := pathfind.BFS(m, m.Index(start.X, start.Y))
	m.Each(func(idx int, p Point, tile Tile) {
		if tile.IsPassable() && dist[idx] == pathfind.Unreachable {
			t.Errorf("Passable tile at (%d,%d) unreachable from start", p.X, p.Y)
		}
	})
}

func TestBuildRetriesDegenerateCarve(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBuilder(rng)

	attempts := 0
	realCarve := b.carve
	b.carve = func(m *Map, rng *rand.Rand, start Point) {
		attempts++
		if attempts == 1 {
			return // leave everything walled in
		}
		realCarve(m, rng, start)
	}

	m, start, err := b.Build(context.Background(), DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("Carve attempts = %d; want 2 (one discarded, one kept)", attempts)
	}

	dist := pathfind.BFS(m, m.Index(start.X, start.Y))
	if idx, _ := pathfind.Farthest(dist); idx == pathfind.Unreachable {
		t.Error("Recovered map is not connected from start")
	}
}

func TestBuildFailsAfterRetryBudget(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewSource(1)))

	attempts := 0
	b.carve = func(m *Map, rng *rand.Rand, start Point) {
		attempts++ // never carves anything
	}

	_, _, err := b.Build(context.Background(), DefaultWidth, DefaultHeight)
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("Build error = %v; want ErrGenerationFailed", err)
	}
	if attempts != maxAttempts {
		t.Errorf("Carve attempts = %d; want the full budget of %d", attempts, maxAttempts)
	}
}

func TestBuildInvalidDimensions(t *testing.T) {
	b := NewBuilder(rand.New(rand.NewSource(1)))
	if _, _, err := b.Build(context.Background(), 0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Build(0,10) error = %v; want ErrInvalidDimensions", err)
	}
}
