// Package asset embeds the sprite prototypes and the initial world layout
package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/sprite"
)

//go:embed data/sprites/*.txt data/layout.yaml
var dataFS embed.FS

const (
	spriteDir  = "data/sprites"
	layoutFile = "data/layout.yaml"
)

// ErrLayout marks an inconsistent layout file
var ErrLayout = errors.New("invalid layout")

// Point is a viewport coordinate
type Point struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// Placement positions a single named sprite
type Placement struct {
	Sprite string `yaml:"sprite"`
	X      uint16 `yaml:"x"`
	Y      uint16 `yaml:"y"`
}

// RowLayout places Count copies of a sprite, Spacing columns apart
type RowLayout struct {
	Sprite  string `yaml:"sprite"`
	X       uint16 `yaml:"x"`
	Y       uint16 `yaml:"y"`
	Count   int    `yaml:"count"`
	Spacing uint16 `yaml:"spacing"`
}

// Origins expands the row into one origin per alien
func (r RowLayout) Origins() []Point {
	out := make([]Point, r.Count)
	for i := range out {
		out[i] = Point{X: r.X + uint16(i)*r.Spacing, Y: r.Y}
	}
	return out
}

// BunkerLayout places one bunker sprite at every origin
type BunkerLayout struct {
	Sprite  string  `yaml:"sprite"`
	Origins []Point `yaml:"origins"`
}

// Layout is the initial placement of a fresh world
type Layout struct {
	Player  Placement    `yaml:"player"`
	Laser   string       `yaml:"laser"`
	Rows    []RowLayout  `yaml:"rows"`
	Bunkers BunkerLayout `yaml:"bunkers"`
}

// Pack holds every template and the layout needed to build a world
type Pack struct {
	Sprites map[string]sprite.Template
	Layout  Layout
}

// Sprite returns the named template
func (p *Pack) Sprite(name string) (sprite.Template, bool) {
	t, ok := p.Sprites[name]
	return t, ok
}

// Player returns the player template
func (p *Pack) Player() sprite.Template {
	return p.Sprites[p.Layout.Player.Sprite]
}

// Laser returns the laser template shared by both sides
func (p *Pack) Laser() sprite.Template {
	return p.Sprites[p.Layout.Laser]
}

// Bunker returns the bunker template
func (p *Pack) Bunker() sprite.Template {
	return p.Sprites[p.Layout.Bunkers.Sprite]
}

// Load parses the embedded assets
func Load() (*Pack, error) {
	return LoadFS(dataFS)
}

// LoadFS parses sprites and layout from fsys, laid out as the embedded data directory
func LoadFS(fsys fs.FS) (*Pack, error) {
	entries, err := fs.ReadDir(fsys, spriteDir)
	if err != nil {
		return nil, fmt.Errorf("read sprites: %w", err)
	}

	pack := &Pack{Sprites: make(map[string]sprite.Template, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(spriteDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read sprite %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".txt")
		tpl, err := sprite.Parse(name, string(raw))
		if err != nil {
			return nil, err
		}
		pack.Sprites[name] = tpl
	}

	raw, err := fs.ReadFile(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if err := yaml.Unmarshal(raw, &pack.Layout); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := pack.validate(); err != nil {
		return nil, err
	}
	return pack, nil
}

// validate checks sprite references and that every initial cell lies inside the viewport
func (p *Pack) validate() error {
	l := p.Layout

	player, ok := p.Sprites[l.Player.Sprite]
	if !ok {
		return fmt.Errorf("%w: player: unknown sprite %q", ErrLayout, l.Player.Sprite)
	}
	if err := inViewport("player", player.At(l.Player.X, l.Player.Y)); err != nil {
		return err
	}

	laser, ok := p.Sprites[l.Laser]
	if !ok {
		return fmt.Errorf("%w: laser: unknown sprite %q", ErrLayout, l.Laser)
	}
	if laser.Len() != 2 {
		return fmt.Errorf("%w: laser: expected 2 cells, got %d", ErrLayout, laser.Len())
	}

	if len(l.Rows) == 0 {
		return fmt.Errorf("%w: no alien rows", ErrLayout)
	}
	for i, row := range l.Rows {
		tpl, ok := p.Sprites[row.Sprite]
		if !ok {
			return fmt.Errorf("%w: row %d: unknown sprite %q", ErrLayout, i, row.Sprite)
		}
		if row.Count <= 0 {
			return fmt.Errorf("%w: row %d: count must be positive", ErrLayout, i)
		}
		if row.Count > 1 && int(row.Spacing) < tpl.Width() {
			return fmt.Errorf("%w: row %d: spacing %d overlaps sprite width %d", ErrLayout, i, row.Spacing, tpl.Width())
		}
		for _, o := range row.Origins() {
			if err := inViewport(fmt.Sprintf("row %d", i), tpl.At(o.X, o.Y)); err != nil {
				return err
			}
		}
	}

	bunker, ok := p.Sprites[l.Bunkers.Sprite]
	if !ok {
		return fmt.Errorf("%w: bunkers: unknown sprite %q", ErrLayout, l.Bunkers.Sprite)
	}
	for _, o := range l.Bunkers.Origins {
		if err := inViewport("bunker", bunker.At(o.X, o.Y)); err != nil {
			return err
		}
	}
	return nil
}

func inViewport(what string, cells []sprite.Cell) error {
	for _, c := range cells {
		if c.X < constants.MinX || c.X > constants.MaxX || c.Y < constants.MinY || c.Y > constants.MaxY {
			return fmt.Errorf("%w: %s: cell (%d,%d) outside viewport", ErrLayout, what, c.X, c.Y)
		}
	}
	return nil
}
