package input

// Intent is the semantic action a key resolves to
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentFire
	IntentQuit
	IntentConfirm // only acted on outside of Playing
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentMoveLeft:  "move-left",
	IntentMoveRight: "move-right",
	IntentFire:      "fire",
	IntentQuit:      "quit",
	IntentConfirm:   "confirm",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
