package menu

// Action is what the overlay asks the app to do after handling input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

// Panels holds overlay visibility. The app flips these from key bindings and
// the menu bar flips them from clicks.
type Panels struct {
	MenuBar bool
	FPS     bool
	Theme   bool
	Editor  bool
}

// Stats are per-frame numbers the frame-time panel shows.
type Stats struct {
	DrawCalls int
	Sprites   int
}
