// Command keytest shows how key presses resolve to game intents
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/terminal"
)

const maxLog = 10

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "keytest: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	term, err := terminal.New(terminal.ColorModeAuto)
	if err != nil {
		return err
	}
	if err := term.Prepare(); err != nil {
		return err
	}
	defer term.Restore()

	screen := term.Screen()
	w, h := screen.Size()
	buf := render.NewBuffer(w, h)
	keys := input.DefaultKeyTable()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(render.RGBGreen.TCell())
	logStyle := tcell.StyleDefault

	// Event log (last N keys)
	eventLog := make([]string, 0, maxLog)
	addLog := func(s string) {
		if len(eventLog) >= maxLog {
			copy(eventLog, eventLog[1:])
			eventLog = eventLog[:maxLog-1]
		}
		eventLog = append(eventLog, s)
	}

	draw := func() {
		buf.Clear()
		buf.Text(1, 0, "Key Test - Press keys to see their intent - 'q' quits", titleStyle)
		for i, entry := range eventLog {
			buf.Text(1, 2+i, entry, logStyle)
		}
		buf.Flush(screen)
	}

	for {
		draw()
		key, err := term.ReadKey()
		if err != nil {
			return err
		}
		intent := keys.Resolve(key)
		addLog(fmt.Sprintf("KEY: %-8s INTENT: %s", key, intent))
		if intent == input.IntentQuit {
			return nil
		}
	}
}
