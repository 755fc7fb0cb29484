package terminal

import (
	"errors"
	"fmt"
)

// Kind separates screen failures from input failures
type Kind uint8

const (
	KindTerminal Kind = iota // mode switch or draw
	KindInput                // poll or read
)

func (k Kind) String() string {
	if k == KindInput {
		return "input"
	}
	return "terminal"
}

var (
	// ErrClosed is reported when the event stream ends
	ErrClosed = errors.New("event stream closed")

	// ErrNotPrepared is reported when the terminal is used outside Prepare/Restore
	ErrNotPrepared = errors.New("terminal not prepared")
)

// Error is a terminal or input failure; both end the session
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
