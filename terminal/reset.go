package terminal

import "io"

// Restore sequences written on crash, independent of tcell state
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiReset         = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset restores the terminal after a panic
// Best-effort; write errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiReset)
	w.Write(csiAutoWrapOn)
	resetTerminalMode()
}
