package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical sandbox command, not a physical key
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleTheme
	ActionToggleFPS
	ActionToggleEditor
	ActionToggleMenuBar
	ActionScrollUp
	ActionScrollDown
	ActionMouseLeft
	ActionModControl
	ActionCount // array sizing
)

// InputManager maps glfw keys and buttons to actions and tracks per-frame edges.
// Event handlers run from glfw callbacks on the main thread; the mutex keeps the
// manager safe to query from elsewhere.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool

	// reset by PostUpdate
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
	pulses       [ActionCount]int
}

// NewInputManager creates a manager with the default sandbox bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyUp, ActionMoveUp)
	im.BindKey(glfw.KeyDown, ActionMoveDown)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyF9, ActionToggleTheme)
	im.BindKey(glfw.KeyF3, ActionToggleFPS)
	im.BindKey(glfw.KeyF2, ActionToggleEditor)
	im.BindKey(glfw.KeyGraveAccent, ActionToggleMenuBar)
	im.BindKey(glfw.KeyPageUp, ActionScrollUp)
	im.BindKey(glfw.KeyPageDown, ActionScrollDown)
	im.BindKey(glfw.KeyLeftControl, ActionModControl)
	im.BindKey(glfw.KeyRightControl, ActionModControl)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey binds a physical key to an action. A key may drive several actions.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent updates state for a key event. Press and Repeat both pulse.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action)
}

func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action)
}

func (im *InputManager) apply(actions []Action, action glfw.Action) {
	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		if isPressed {
			im.pulses[act]++
		}
		im.currentState[act] = isPressed
	}
}

// Attach installs key and mouse callbacks on window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears the per-frame edges. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
	im.pulses = [ActionCount]int{}
}

// IsActive reports whether the action is held.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// Pulses counts press and key-repeat events for action during this frame.
func (im *InputManager) Pulses(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.pulses[action]
}
