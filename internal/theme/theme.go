package theme

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// TileStyleDef defines how one tile type is drawn.
type TileStyleDef struct {
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#808080")
	Bold  bool   `json:"bold"`  // Render with bold weight
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *TileStyleDef) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// Style returns the tcell style for this tile.
func (s *TileStyleDef) Style() tcell.Style {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		color = tcell.ColorWhite // fallback
	}
	return tcell.StyleDefault.Foreground(color).Bold(s.Bold)
}

// ThemeDef defines a visual theme loaded from JSON, one style per tile type.
type ThemeDef struct {
	ID     string       `json:"id"`   // Unique identifier (e.g., "catacomb")
	Name   string       `json:"name"` // Display name
	Wall   TileStyleDef `json:"wall"`
	Floor  TileStyleDef `json:"floor"`
	Exit   TileStyleDef `json:"exit"`
	Player TileStyleDef `json:"player"`
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// Registry holds loaded theme definitions and provides lookup utilities.
type Registry struct {
	themes []ThemeDef
	byID   map[string]*ThemeDef
}

// NewRegistry creates a registry from loaded theme definitions.
func NewRegistry(themes []ThemeDef) *Registry {
	r := &Registry{
		themes: themes,
		byID:   make(map[string]*ThemeDef),
	}
	for i := range themes {
		r.byID[themes[i].ID] = &themes[i]
	}
	return r
}

// LoadRegistry loads and creates a registry from the embedded themes.json.
func LoadRegistry() (*Registry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewRegistry(themes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *ThemeDef {
	return r.byID[id]
}

// Default returns the first loaded theme.
func (r *Registry) Default() *ThemeDef {
	return &r.themes[0]
}

// All returns all theme definitions.
func (r *Registry) All() []ThemeDef {
	return r.themes
}

// Count returns the number of themes in the registry.
func (r *Registry) Count() int {
	return len(r.themes)
}
