package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/constants"
)

// ErrNoScreen is returned when painting without a screen
var ErrNoScreen = errors.New("render: no screen")

// TerminalRenderer composes frames in a Buffer and flushes them to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *Buffer
	style  tcell.Style
}

// NewTerminalRenderer creates a renderer covering the viewport and the status line
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		buf:    NewBuffer(int(constants.MaxX)+1, int(constants.StatusY)+1),
		style:  tcell.StyleDefault,
	}
}

// Paint draws every cell in order, the status line, then flushes
func (r *TerminalRenderer) Paint(cells []Cell, status string) error {
	if r.screen == nil {
		return ErrNoScreen
	}
	r.buf.Clear()

	for _, c := range cells {
		style := r.style
		if c.Colored {
			style = style.Foreground(c.Color.TCell())
		}
		r.buf.Set(int(c.X), int(c.Y), c.Glyph, style)
	}
	r.buf.Text(constants.StatusX, int(constants.StatusY), status, r.style)

	r.buf.Flush(r.screen)
	return nil
}

// PaintMessage centres msg in the viewport on an otherwise empty frame
func (r *TerminalRenderer) PaintMessage(msg string) error {
	if r.screen == nil {
		return ErrNoScreen
	}
	r.buf.Clear()

	width := len([]rune(msg))
	x := (int(constants.MinX)+int(constants.MaxX))/2 - width/2
	if x < int(constants.MinX) {
		x = int(constants.MinX)
	}
	r.buf.Text(x, (int(constants.MinY)+int(constants.MaxY))/2, msg, r.style)

	r.buf.Flush(r.screen)
	return nil
}
