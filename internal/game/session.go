package game

import (
	"context"

	"github.com/samdwyer/gridrunner/internal/entity"
	"github.com/samdwyer/gridrunner/internal/world"
)

// Session holds the state of one play-through: the current map, the
// player, and the score. It is constructed at session start and owned by
// the game loop; the map inside it is read-only once built.
type Session struct {
	Map    *world.Map
	Start  world.Point
	Player *entity.Player
	Score  int

	builder *world.Builder
	width   int
	height  int
}

// NewSession builds the first map and places the player at its start tile.
func NewSession(ctx context.Context, builder *world.Builder, width, height int) (*Session, error) {
	m, start, err := builder.Build(ctx, width, height)
	if err != nil {
		return nil, err
	}

	return &Session{
		Map:     m,
		Start:   start,
		Player:  entity.NewPlayer(start.X, start.Y),
		builder: builder,
		width:   width,
		height:  height,
	}, nil
}

// TryMove attempts to move the player by the given delta. Moves into
// walls or off the map are ignored. Stepping onto the exit scores a point
// and advances to a freshly generated map.
func (s *Session) TryMove(ctx context.Context, dx, dy int) (bool, error) {
	nx, ny := s.Player.X+dx, s.Player.Y+dy
	if !s.Map.IsPassable(nx, ny) {
		return false, nil
	}
	s.Player.Move(dx, dy)

	t, err := s.Map.TileAt(nx, ny)
	if err != nil {
		return true, err
	}
	if t == world.TileExit {
		s.Score++
		if err := s.Advance(ctx); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Advance replaces the map with a freshly generated one, drawn from the
// session's random source, and resets the player to its start tile.
func (s *Session) Advance(ctx context.Context) error {
	m, start, err := s.builder.Build(ctx, s.width, s.height)
	if err != nil {
		return err
	}
	s.Map = m
	s.Start = start
	s.Player.MoveTo(start.X, start.Y)
	return nil
}
