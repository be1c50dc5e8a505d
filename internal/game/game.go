package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridrunner/internal/telemetry"
	"github.com/samdwyer/gridrunner/internal/theme"
	"github.com/samdwyer/gridrunner/internal/ui"
	"github.com/samdwyer/gridrunner/internal/world"
)

// Game owns the screen, the renderer, and the current session.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	state    State
	err      error
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()

	themes, err := theme.LoadRegistry()
	if err != nil {
		return nil, err
	}
	t := themes.GetByID(cfg.Theme)
	if t == nil {
		t = themes.Default()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, t),
		state:    StatePlaying,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	builder := world.NewBuilder(rng)

	session, err := NewSession(ctx, builder, g.cfg.Width, g.cfg.Height)
	if err != nil {
		initSpan.End()
		// A broken map must never reach the player; abort setup.
		return fmt.Errorf("session setup: %w", err)
	}
	g.session = session

	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.Int("map.start_x", session.Start.X),
		attribute.Int("map.start_y", session.Start.Y),
	)
	initSpan.End()

	for g.state == StatePlaying {
		g.renderer.Render(session.Map, session.Player, session.Score)
		g.handleInput(ctx)
	}

	return g.err
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateGameOver

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			g.tryMove(ctx, 0, -1)
		case 's', 'S':
			g.tryMove(ctx, 0, 1)
		case 'a', 'A':
			g.tryMove(ctx, -1, 0)
		case 'd', 'D':
			g.tryMove(ctx, 1, 0)
		case 'q', 'Q':
			g.state = StateGameOver
		}
	}
}

// tryMove forwards a movement to the session. A failed map regeneration
// ends the game rather than leaving the player on a broken map.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	if _, err := g.session.TryMove(ctx, dx, dy); err != nil {
		g.err = err
		g.state = StateGameOver
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
