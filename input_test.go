package learngl_test

import (
	"testing"

	"github.com/go-theft-auto/learngl"
)

func TestInputEdges(t *testing.T) {
	in := learngl.NewInputState()

	in.SetKey(learngl.KeyW, true)
	if !in.KeyDown(learngl.KeyW) || !in.KeyPressed(learngl.KeyW) {
		t.Fatal("expected W down and pressed")
	}

	in.Reset()
	in.SetKey(learngl.KeyW, true) // GLFW repeat
	if !in.KeyDown(learngl.KeyW) {
		t.Error("W should still be down after reset")
	}
	if in.KeyPressed(learngl.KeyW) {
		t.Error("repeat should not count as a fresh press")
	}

	in.Reset()
	in.SetKey(learngl.KeyW, false)
	if in.KeyDown(learngl.KeyW) || !in.KeyReleased(learngl.KeyW) {
		t.Error("expected W up and released")
	}

	in.Reset()
	if in.KeyReleased(learngl.KeyW) {
		t.Error("release should clear on reset")
	}
}

func TestInputIgnoresUnknownKeys(t *testing.T) {
	in := learngl.NewInputState()
	in.SetKey(learngl.KeyCount, true)
	in.SetKey(-1, true)
	if in.KeyDown(learngl.KeyCount) || in.KeyDown(-1) {
		t.Error("out of range keys reported down")
	}
	if in.AnyDown(learngl.KeyW, learngl.KeyA) {
		t.Error("no keys were pressed")
	}
}

func TestKeyName(t *testing.T) {
	if got := learngl.KeyName(learngl.KeyEscape); got != "Esc" {
		t.Errorf("KeyName(Escape) = %q", got)
	}
	if got := learngl.KeyName(learngl.KeyCount); got != "?" {
		t.Errorf("KeyName(KeyCount) = %q", got)
	}
}
