package input

// KeyTable maps key symbols to intents
type KeyTable struct {
	// Special keys (arrows, enter, space)
	SpecialKeys map[KeyCode]Intent

	// Printable characters
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[KeyCode]Intent{
			KeyLeft:  IntentMoveLeft,
			KeyRight: IntentMoveRight,
			KeySpace: IntentFire,
			KeyEnter: IntentConfirm,
			KeyUp:    IntentNone,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
		},
	}
}

// Resolve maps a key to its intent, unbound keys resolve to IntentNone
func (t *KeyTable) Resolve(k Key) Intent {
	if k.Code == KeyRune {
		return t.Runes[k.Rune]
	}
	return t.SpecialKeys[k.Code]
}
