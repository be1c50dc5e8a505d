package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridrunner/internal/entity"
	"github.com/samdwyer/gridrunner/internal/theme"
	"github.com/samdwyer/gridrunner/internal/world"
)

// Renderer draws the map and player to the screen, one styled cell per
// tile, keyed by tile type through the active theme.
type Renderer struct {
	screen *Screen
	theme  *theme.ThemeDef
}

// NewRenderer creates a renderer for the given screen and theme.
func NewRenderer(screen *Screen, t *theme.ThemeDef) *Renderer {
	return &Renderer{screen: screen, theme: t}
}

// Render draws the current frame: map tiles, player on top, score line.
func (r *Renderer) Render(m *world.Map, player *entity.Player, score int) {
	r.screen.Clear()

	m.Each(func(idx int, p world.Point, t world.Tile) {
		style := r.tileStyle(t)
		r.screen.SetContent(p.X, p.Y, style.GlyphRune(), style.Style())
	})

	playerStyle := r.theme.Player
	r.screen.SetContent(player.X, player.Y, playerStyle.GlyphRune(), playerStyle.Style())

	r.RenderMessage(fmt.Sprintf("Score: %d", score), m.Height()+1)

	r.screen.Show()
}

// tileStyle returns the theme style for a tile type.
func (r *Renderer) tileStyle(t world.Tile) theme.TileStyleDef {
	switch t {
	case world.TileFloor:
		return r.theme.Floor
	case world.TileExit:
		return r.theme.Exit
	default:
		return r.theme.Wall
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
