package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestEdgesAndPostUpdate(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyF3, glfw.Press)
	if !im.JustPressed(ActionToggleFPS) || !im.IsActive(ActionToggleFPS) {
		t.Fatalf("expected F3 press to register")
	}
	im.PostUpdate()
	if im.JustPressed(ActionToggleFPS) {
		t.Fatalf("edge should clear after PostUpdate")
	}
	if !im.IsActive(ActionToggleFPS) {
		t.Fatalf("held state should survive PostUpdate")
	}

	im.HandleKeyEvent(glfw.KeyF3, glfw.Release)
	if !im.JustReleased(ActionToggleFPS) || im.IsActive(ActionToggleFPS) {
		t.Fatalf("expected release edge")
	}
}

func TestRepeatPulses(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyRight, glfw.Press)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Repeat)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Repeat)

	if got := im.Pulses(ActionMoveRight); got != 3 {
		t.Fatalf("pulses = %d, want 3", got)
	}
	im.PostUpdate()
	if got := im.Pulses(ActionMoveRight); got != 0 {
		t.Fatalf("pulses after PostUpdate = %d", got)
	}
}

func TestBothControlKeysDriveModifier(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyRightControl, glfw.Press)
	if !im.IsActive(ActionModControl) {
		t.Fatalf("right control should set modifier")
	}
	im.UnbindKey(glfw.KeyLeftControl)
	im.HandleKeyEvent(glfw.KeyLeftControl, glfw.Release)
	if !im.IsActive(ActionModControl) {
		t.Fatalf("unbound key must not change state")
	}
}

func TestMouseButton(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !im.JustPressed(ActionMouseLeft) {
		t.Fatalf("left click not seen")
	}
	if im.JustPressed(ActionCount) || im.IsActive(-1) {
		t.Fatalf("out of range actions must be false")
	}
}
