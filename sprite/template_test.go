package sprite

import (
	"errors"
	"testing"
)

// TestParse_Valid verifies triples are read in order and blank lines are ignored
func TestParse_Valid(t *testing.T) {
	tpl, err := Parse("laser", "0 0 |\n\n0 1 |\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tpl.Len() != 2 {
		t.Fatalf("Expected 2 cells, got %d", tpl.Len())
	}
	want := []Cell{{X: 0, Y: 0, Glyph: '|'}, {X: 0, Y: 1, Glyph: '|'}}
	for i, c := range tpl.Offsets() {
		if c != want[i] {
			t.Errorf("Cell %d: expected %+v, got %+v", i, want[i], c)
		}
	}
	if tpl.Name() != "laser" {
		t.Errorf("Expected name laser, got %q", tpl.Name())
	}
}

// TestParse_Unicode verifies multi-byte glyphs are accepted
func TestParse_Unicode(t *testing.T) {
	tpl, err := Parse("bunker", "3 1 █")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := tpl.Offsets()[0].Glyph; got != '█' {
		t.Errorf("Expected glyph █, got %q", got)
	}
}

// TestParse_Malformed verifies malformed lines are reported with line and field
func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		line  int
		field string
		err   error
	}{
		{"missing glyph", "0 0 #\n1 1", 2, "", ErrFieldCount},
		{"extra field", "0 0 # #", 1, "", ErrFieldCount},
		{"bad x", "a 0 #", 1, "x", ErrCoordinate},
		{"negative y", "0 -1 #", 1, "y", ErrCoordinate},
		{"overflow x", "70000 0 #", 1, "x", ErrCoordinate},
		{"long glyph", "0 0 ##", 1, "glyph", ErrGlyph},
		{"empty", "\n\n", 0, "", ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", tt.text)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *ParseError, got %v", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Expected line %d, got %d", tt.line, perr.Line)
			}
			if perr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, perr.Field)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}
}

// TestTemplate_AtRoundTrip verifies instantiation is a pure translation
func TestTemplate_AtRoundTrip(t *testing.T) {
	tpl := NewTemplate("ship", []Cell{{2, 0, '^'}, {1, 1, '/'}, {2, 1, '#'}, {3, 1, '\\'}})

	offsets := []struct{ dx, dy uint16 }{{0, 0}, {1, 0}, {0, 7}, {40, 33}}
	base := tpl.At(0, 0)
	for _, o := range offsets {
		moved := tpl.At(o.dx, o.dy)
		if len(moved) != len(base) {
			t.Fatalf("Expected %d cells, got %d", len(base), len(moved))
		}
		for i := range base {
			want := Cell{X: base[i].X + o.dx, Y: base[i].Y + o.dy, Glyph: base[i].Glyph}
			if moved[i] != want {
				t.Errorf("Offset (%d,%d) cell %d: expected %+v, got %+v", o.dx, o.dy, i, want, moved[i])
			}
		}
	}
}

// TestTemplate_AtIsFresh verifies instances do not alias the template
func TestTemplate_AtIsFresh(t *testing.T) {
	tpl := NewTemplate("dot", []Cell{{0, 0, '.'}})
	cells := tpl.At(5, 5)
	cells[0].X = 99

	if got := tpl.At(5, 5)[0].X; got != 5 {
		t.Errorf("Expected template to stay untouched, got X=%d", got)
	}
}

// TestShift verifies relative moves and the zero floor
func TestShift(t *testing.T) {
	cells := []Cell{{3, 3, 'a'}, {4, 3, 'b'}}

	moved := Shift(cells, -2, 1)
	if moved[0] != (Cell{1, 4, 'a'}) || moved[1] != (Cell{2, 4, 'b'}) {
		t.Errorf("Unexpected shift result %+v", moved)
	}
	if cells[0].X != 3 {
		t.Error("Expected Shift to leave the input untouched")
	}

	floored := Shift(cells, -10, 0)
	if floored[0].X != 0 {
		t.Errorf("Expected X floored at 0, got %d", floored[0].X)
	}
}

// TestBoundsAndOverlaps covers the geometry helpers
func TestBoundsAndOverlaps(t *testing.T) {
	cells := []Cell{{5, 2, 'x'}, {1, 9, 'y'}, {7, 4, 'z'}}
	minX, minY, maxX, maxY, ok := Bounds(cells)
	if !ok || minX != 1 || minY != 2 || maxX != 7 || maxY != 9 {
		t.Errorf("Unexpected bounds %d,%d,%d,%d ok=%v", minX, minY, maxX, maxY, ok)
	}
	if _, _, _, _, ok := Bounds(nil); ok {
		t.Error("Expected empty bounds to report !ok")
	}

	hit, ok := Overlaps([]Cell{{9, 9, '|'}, {7, 4, '|'}}, cells)
	if !ok || hit != (Cell{7, 4, '|'}) {
		t.Errorf("Expected overlap at (7,4), got %+v ok=%v", hit, ok)
	}
	if _, ok := Overlaps([]Cell{{0, 0, '|'}}, cells); ok {
		t.Error("Expected no overlap")
	}

	if NewTemplate("w", cells).Width() != 7 {
		t.Errorf("Expected width 7")
	}
}
