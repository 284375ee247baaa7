package learngl

// Key represents a keyboard key the programs react to.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyCount
)

// InputState holds keyboard state for the current frame.
// It is populated by the window backend from GLFW key events.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if s == nil || key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if s == nil || key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if s == nil || key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// AnyDown reports whether at least one of keys is held.
func (s *InputState) AnyDown(keys ...Key) bool {
	for _, k := range keys {
		if s.KeyDown(k) {
			return true
		}
	}
	return false
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:   "--",
		KeyW:      "W",
		KeyA:      "A",
		KeyS:      "S",
		KeyD:      "D",
		KeyUp:     "Up",
		KeyDown:   "Down",
		KeyLeft:   "Left",
		KeyRight:  "Right",
		KeyEscape: "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
