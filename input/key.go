package input

import "fmt"

// KeyCode is the abstract key symbol delivered by the terminal driver
type KeyCode uint8

const (
	KeyOther KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeySpace
	KeyEnter
	KeyRune // printable character carried in Key.Rune
)

// Key is one key event; Rune is only meaningful for KeyRune
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a printable key
func RuneKey(r rune) Key {
	if r == ' ' {
		return Key{Code: KeySpace, Rune: ' '}
	}
	return Key{Code: KeyRune, Rune: r}
}

var keyCodeNames = [...]string{
	KeyOther: "other",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeySpace: "space",
	KeyEnter: "enter",
	KeyRune:  "rune",
}

func (c KeyCode) String() string {
	if int(c) < len(keyCodeNames) {
		return keyCodeNames[c]
	}
	return "unknown"
}

// String names the key; printable runes are quoted
func (k Key) String() string {
	if k.Code == KeyRune {
		if k.Rune >= 0x20 && k.Rune < 0x7f {
			return fmt.Sprintf("'%c'", k.Rune)
		}
		return fmt.Sprintf("U+%04X", k.Rune)
	}
	return k.Code.String()
}
