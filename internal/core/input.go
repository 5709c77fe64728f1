package core

// Action is what a key press means to a game, independent of the key.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the input of a single player between two ticks.
// The zero value is an empty frame.
type InputFrame struct {
	// Sequence records every triggered action in arrival order, duplicates
	// included. Games that care which key came first read this.
	Sequence []Action

	seen uint32 // Bit per action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a >= actionCount {
		return
	}
	f.seen |= 1 << a
	f.Sequence = append(f.Sequence, a)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.seen&(1<<a) != 0
}

// Directions returns the movement actions of this frame in arrival order.
func (f InputFrame) Directions() []Action {
	var dirs []Action
	for _, a := range f.Sequence {
		if a.IsDirection() {
			dirs = append(dirs, a)
		}
	}
	return dirs
}

// Clear empties the frame, keeping the sequence's storage.
func (f *InputFrame) Clear() {
	f.seen = 0
	f.Sequence = f.Sequence[:0]
}

// Clone returns a copy that shares no storage with f.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{
		Sequence: append([]Action(nil), f.Sequence...),
		seen:     f.seen,
	}
}
