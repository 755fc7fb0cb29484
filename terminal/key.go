package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/input"
)

// specialKeys maps tcell keys to key symbols, runes are handled separately
var specialKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyLeft:  input.KeyLeft,
	tcell.KeyRight: input.KeyRight,
	tcell.KeyUp:    input.KeyUp,
	tcell.KeyEnter: input.KeyEnter,
}

// translateKey converts a tcell key event into a key symbol
func translateKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return input.RuneKey(ev.Rune())
	}
	if code, ok := specialKeys[ev.Key()]; ok {
		return input.Key{Code: code}
	}
	return input.Key{Code: input.KeyOther}
}
