package input

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// buttons lists the buttons a press can start with, in priority order.
var buttons = [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}

// Key identifies a keyboard key.
type Key int

const (
	KeyShift Key = iota
	KeyControl
	KeyAlt
	KeyMeta
)

// Modifiers is a bitfield of held modifier keys: 1=Shift, 2=Ctrl, 4=Alt/Option, 8=Cmd.
type Modifiers uint8

const (
	ModShift   Modifiers = 1
	ModControl Modifiers = 2
	ModAlt     Modifiers = 4
	ModMeta    Modifiers = 8
)

// MouseDevice reports the current state of a pointer input source.
type MouseDevice interface {
	IsButtonDown(b MouseButton) bool
	Position() Vector2i
	Wheel() (dx, dy float64)
}

// KeyboardDevice reports the current state of a keyboard input source.
type KeyboardDevice interface {
	IsKeyDown(k Key) bool
}

// ModifiersOf samples the modifier keys currently held on kb.
func ModifiersOf(kb KeyboardDevice) Modifiers {
	if kb == nil {
		return 0
	}
	var m Modifiers
	if kb.IsKeyDown(KeyShift) {
		m |= ModShift
	}
	if kb.IsKeyDown(KeyControl) {
		m |= ModControl
	}
	if kb.IsKeyDown(KeyAlt) {
		m |= ModAlt
	}
	if kb.IsKeyDown(KeyMeta) {
		m |= ModMeta
	}
	return m
}
