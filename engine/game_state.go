package engine

import "github.com/lixenwraith/invaders/constants"

// State is the top-level game state
type State uint8

const (
	StateNewGame State = iota // banner, waiting for confirm or quit
	StatePlaying
	StateWon
	StateLost
)

var stateNames = [...]string{
	StateNewGame: "new-game",
	StatePlaying: "playing",
	StateWon:     "won",
	StateLost:    "lost",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Message returns the full-screen text for a menu state, empty while playing
func (s State) Message() string {
	switch s {
	case StateNewGame:
		return constants.MessageNewGame
	case StateWon:
		return constants.MessageWon
	case StateLost:
		return constants.MessageLost
	}
	return ""
}
