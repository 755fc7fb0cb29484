package sprite

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Template is an origin-relative shape, parsed once and never mutated
type Template struct {
	name  string
	cells []Cell
}

// NewTemplate builds a template from offsets, the slice is copied
func NewTemplate(name string, offsets []Cell) Template {
	return Template{name: name, cells: append([]Cell(nil), offsets...)}
}

// Name returns the asset name the template was parsed from
func (t Template) Name() string {
	return t.name
}

// Len returns the number of cells in the template
func (t Template) Len() int {
	return len(t.cells)
}

// Offsets returns a copy of the origin-relative cells
func (t Template) Offsets() []Cell {
	return append([]Cell(nil), t.cells...)
}

// At instantiates the template with its origin at x, y
func (t Template) At(x, y uint16) []Cell {
	out := make([]Cell, len(t.cells))
	for i, c := range t.cells {
		out[i] = Cell{X: c.X + x, Y: c.Y + y, Glyph: c.Glyph}
	}
	return out
}

// Width returns the horizontal extent of the template in cells
func (t Template) Width() int {
	minX, _, maxX, _, ok := Bounds(t.cells)
	if !ok {
		return 0
	}
	return int(maxX-minX) + 1
}

// Errors reported by Parse, wrapped in ParseError
var (
	ErrFieldCount = errors.New("expected \"<x> <y> <glyph>\"")
	ErrCoordinate = errors.New("invalid coordinate")
	ErrGlyph      = errors.New("glyph must be a single character")
	ErrEmpty      = errors.New("no cells")
)

// ParseError reports a malformed asset line or field
type ParseError struct {
	Name  string // asset name
	Line  int    // 1-based, 0 for whole-asset errors
	Field string // x, y, glyph or empty
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("asset %s: %v", e.Name, e.Err)
	case e.Field == "":
		return fmt.Sprintf("asset %s:%d: %v", e.Name, e.Line, e.Err)
	default:
		return fmt.Sprintf("asset %s:%d: field %s: %v", e.Name, e.Line, e.Field, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads one "<x> <y> <glyph>" triple per line
// Blank lines are ignored; any other malformed line aborts the parse
func Parse(name, text string) (Template, error) {
	var cells []Cell
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) != 3 {
			return Template{}, &ParseError{Name: name, Line: line, Err: ErrFieldCount}
		}

		x, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			return Template{}, &ParseError{Name: name, Line: line, Field: "x", Err: fmt.Errorf("%w: %q", ErrCoordinate, fields[0])}
		}
		y, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return Template{}, &ParseError{Name: name, Line: line, Field: "y", Err: fmt.Errorf("%w: %q", ErrCoordinate, fields[1])}
		}
		glyph, size := utf8.DecodeRuneInString(fields[2])
		if glyph == utf8.RuneError || size != len(fields[2]) {
			return Template{}, &ParseError{Name: name, Line: line, Field: "glyph", Err: fmt.Errorf("%w: %q", ErrGlyph, fields[2])}
		}

		cells = append(cells, Cell{X: uint16(x), Y: uint16(y), Glyph: glyph})
	}
	if err := sc.Err(); err != nil {
		return Template{}, &ParseError{Name: name, Line: line, Err: err}
	}
	if len(cells) == 0 {
		return Template{}, &ParseError{Name: name, Err: ErrEmpty}
	}
	return Template{name: name, cells: cells}, nil
}
