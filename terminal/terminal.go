package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/input"
)

// eventBuffer is the capacity of the channel between the event pump and the loop
const eventBuffer = 64

// Terminal owns the tcell screen for a session
// Prepare/Restore bracket the session; Poll and ReadKey are called from the game loop only
type Terminal struct {
	screen tcell.Screen
	mode   ColorMode

	prepared bool
	events   chan tcell.Event
	quit     chan struct{}
	pending  *tcell.EventKey
}

// New creates a terminal on the process tty
func New(mode ColorMode) (*Terminal, error) {
	mode = applyColorMode(mode)
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &Error{Kind: KindTerminal, Op: "open", Err: err}
	}
	return &Terminal{screen: screen, mode: mode}, nil
}

// NewWithScreen wraps an existing screen, used with tcell simulation screens
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, mode: ColorModeTrueColor}
}

// Screen returns the underlying screen for painting
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// ColorMode returns the resolved colour mode
func (t *Terminal) ColorMode() ColorMode {
	return t.mode
}

// Prepare enters raw mode and the alternate screen, hides the cursor and starts the event pump
func (t *Terminal) Prepare() error {
	if t.prepared {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return &Error{Kind: KindTerminal, Op: "prepare", Err: err}
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.events = make(chan tcell.Event, eventBuffer)
	t.quit = make(chan struct{})
	t.pending = nil
	t.prepared = true
	go t.pump(t.events, t.quit)
	return nil
}

// Restore stops the event pump and returns the terminal to its original mode
func (t *Terminal) Restore() error {
	if !t.prepared {
		return &Error{Kind: KindTerminal, Op: "restore", Err: ErrNotPrepared}
	}
	t.prepared = false
	close(t.quit)
	t.screen.ShowCursor(-1, -1)
	t.screen.Fini()
	return nil
}

// Poll reports whether a key event arrives before timeout
// Non-key events are consumed while waiting
func (t *Terminal) Poll(timeout time.Duration) (bool, error) {
	if !t.prepared {
		return false, &Error{Kind: KindInput, Op: "poll", Err: ErrNotPrepared}
	}
	if t.pending != nil {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return false, &Error{Kind: KindInput, Op: "poll", Err: ErrClosed}
			}
			key, err := t.accept(ev)
			if err != nil {
				return false, &Error{Kind: KindInput, Op: "poll", Err: err}
			}
			if key != nil {
				t.pending = key
				return true, nil
			}
		case <-timer.C:
			return false, nil
		}
	}
}

// ReadKey blocks until the next key event
func (t *Terminal) ReadKey() (input.Key, error) {
	if !t.prepared {
		return input.Key{}, &Error{Kind: KindInput, Op: "read", Err: ErrNotPrepared}
	}
	if t.pending != nil {
		key := translateKey(t.pending)
		t.pending = nil
		return key, nil
	}

	for {
		ev, ok := <-t.events
		if !ok {
			return input.Key{}, &Error{Kind: KindInput, Op: "read", Err: ErrClosed}
		}
		key, err := t.accept(ev)
		if err != nil {
			return input.Key{}, &Error{Kind: KindInput, Op: "read", Err: err}
		}
		if key != nil {
			return translateKey(key), nil
		}
	}
}

// accept filters one event: keys are returned, resizes repaint, errors surface
func (t *Terminal) accept(ev tcell.Event) (*tcell.EventKey, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ev, nil
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventError:
		return nil, fmt.Errorf("tcell: %w", ev)
	}
	return nil, nil
}

// pump forwards screen events until the screen is finalized or quit is closed
func (t *Terminal) pump(events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}
