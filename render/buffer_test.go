package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestBuffer_SetGet verifies writes, overwrites and bounds
func TestBuffer_SetGet(t *testing.T) {
	b := NewBuffer(10, 4)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	b.Set(2, 1, 'a', tcell.StyleDefault)
	b.Set(2, 1, 'b', red)
	b.Set(10, 0, 'x', tcell.StyleDefault)
	b.Set(-1, 0, 'x', tcell.StyleDefault)

	r, style, ok := b.Get(2, 1)
	if !ok || r != 'b' {
		t.Errorf("Expected later write to win, got %q ok=%v", r, ok)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Errorf("Expected red foreground, got %v", fg)
	}
	if _, _, ok := b.Get(3, 1); ok {
		t.Errorf("Expected untouched cell")
	}
	if _, _, ok := b.Get(10, 0); ok {
		t.Errorf("Expected out of bounds write dropped")
	}
}

// TestBuffer_Clear verifies every cell is reset
func TestBuffer_Clear(t *testing.T) {
	b := NewBuffer(7, 5)
	for y := 0; y < 5; y++ {
		b.Text(0, y, "abcdefg", tcell.StyleDefault)
	}
	b.Clear()

	w, h := b.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, ok := b.Get(x, y); ok || r != 0 {
				t.Fatalf("Expected (%d,%d) cleared, got %q ok=%v", x, y, r, ok)
			}
		}
	}
}

// TestBuffer_Flush verifies touched cells reach the screen and the rest is blank
func TestBuffer_Flush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 4)

	b := NewBuffer(10, 4)
	b.Text(1, 2, "hi", tcell.StyleDefault)
	b.Flush(screen)

	if r, _, _, _ := screen.GetContent(1, 2); r != 'h' {
		t.Errorf("Expected 'h' at (1,2), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(2, 2); r != 'i' {
		t.Errorf("Expected 'i' at (2,2), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank at (0,0), got %q", r)
	}
}
