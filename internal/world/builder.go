package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridrunner/internal/pathfind"
	"github.com/samdwyer/gridrunner/internal/telemetry"
)

const (
	// maxAttempts bounds how often a build retries after a carve leaves
	// the start tile isolated.
	maxAttempts = 8

	// floorQuotaPercent is the share of tiles the walk tries to carve.
	floorQuotaPercent = 45

	// stepFactor bounds the walk length relative to the map area.
	stepFactor = 8
)

// carveFunc carves passable geometry into an all-wall map, starting from
// the given tile.
type carveFunc func(m *Map, rng *rand.Rand, start Point)

// Builder generates maps. It exclusively owns its random source for the
// duration of a Build call; concurrent builds need separate builders.
type Builder struct {
	rng   *rand.Rand
	carve carveFunc
}

// NewBuilder creates a builder using the given random source. Builds are
// deterministic for an identically seeded source.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{
		rng:   rng,
		carve: drunkardsWalk,
	}
}

// Build generates a connected map of the given dimensions and returns it
// together with the player's start coordinate (the grid center). The
// returned map has exactly one exit tile: the reachable floor tile with
// the greatest graph distance from the start, lowest index on ties.
//
// A carve that leaves nothing reachable from the start is discarded and
// retried with a fresh draw from the same source; once the retry budget
// is exhausted the error wraps ErrGenerationFailed.
func (b *Builder) Build(ctx context.Context, width, height int) (*Map, Point, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "builder.build")
	defer span.End()

	start := Point{X: width / 2, Y: height / 2}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		m, exitDist, err := b.generate(width, height, start)
		if errors.Is(err, ErrDisconnected) {
			continue
		}
		if err != nil {
			return nil, Point{}, err
		}

		span.SetAttributes(
			attribute.Int("map.width", width),
			attribute.Int("map.height", height),
			attribute.Int("map.floor_count", m.countFloor()),
			attribute.Int("map.exit_distance", exitDist),
			attribute.Int("map.attempts", attempt),
		)
		return m, start, nil
	}

	return nil, Point{}, fmt.Errorf("no connected map after %d attempts: %w", maxAttempts, ErrGenerationFailed)
}

// generate runs one carve-and-validate attempt. It returns ErrDisconnected
// if no floor tile besides the start is reachable.
func (b *Builder) generate(width, height int, start Point) (*Map, int, error) {
	m, err := NewMap(width, height)
	if err != nil {
		return nil, 0, err
	}

	b.carve(m, b.rng, start)

	// The start must be passable even if the carve never reached it.
	if err := m.SetTile(start.X, start.Y, TileFloor); err != nil {
		return nil, 0, err
	}

	dist := pathfind.BFS(m, m.Index(start.X, start.Y))
	exitIdx, exitDist := pathfind.Farthest(dist)
	if exitIdx == pathfind.Unreachable {
		return nil, 0, ErrDisconnected
	}

	exit := m.PointAt(exitIdx)
	if err := m.SetTile(exit.X, exit.Y, TileExit); err != nil {
		return nil, 0, err
	}
	return m, exitDist, nil
}

// drunkardsWalk carves floor along a bounded random walk from start until
// a floor quota or the step bound is reached. Everything it carves is
// connected to the start by construction.
func drunkardsWalk(m *Map, rng *rand.Rand, start Point) {
	area := m.Width() * m.Height()
	quota := area * floorQuotaPercent / 100
	if quota < 1 {
		quota = 1
	}
	maxSteps := area * stepFactor

	carved := mapset.New[int]()
	p := start
	m.SetTile(p.X, p.Y, TileFloor)
	carved.Put(m.Index(p.X, p.Y))

	for steps := 0; steps < maxSteps && carved.Size() < quota; steps++ {
		d := cardinal[rng.Intn(len(cardinal))]
		n := p.Add(d[0], d[1])
		if !m.InBounds(n.X, n.Y) {
			continue
		}
		p = n
		m.SetTile(p.X, p.Y, TileFloor)
		carved.Put(m.Index(p.X, p.Y))
	}
}

// countFloor returns the number of floor tiles.
func (m *Map) countFloor() int {
	n := 0
	for _, t := range m.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}
