// Package terminal drives the player's terminal through tcell.
//
// Features:
//   - Alternate screen, raw input and hidden cursor for the session
//   - Timeout-bounded polling and blocking reads of key events
//   - Translation of tcell keys into input.Key symbols
//   - Best-effort restoration of the terminal after a crash
package terminal
