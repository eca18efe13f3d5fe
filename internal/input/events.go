package input

import "fmt"

// Vector2i is an integer 2D coordinate.
type Vector2i struct {
	X int
	Y int
}

// Add returns v+o.
func (v Vector2i) Add(o Vector2i) Vector2i { return Vector2i{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector2i) Sub(o Vector2i) Vector2i { return Vector2i{v.X - o.X, v.Y - o.Y} }

// String formats v as "(x, y)".
func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// EventKind identifies the kind of mouse event.
type EventKind string

const (
	KindMouseClick   EventKind = "mouse_click"
	KindMouseRelease EventKind = "mouse_release"
	KindMouseDrag    EventKind = "mouse_drag"
)

// MouseEvent is a single mouse notification delivered to a UI element.
// It is immutable: the devices are borrowed from the input loop that owns
// them and the position is relative to the receiving element.
type MouseEvent struct {
	kind     EventKind
	mouse    MouseDevice
	keyboard KeyboardDevice
	position Vector2i
}

// NewMouseEvent builds an event of the given kind.
func NewMouseEvent(kind EventKind, mouse MouseDevice, keyboard KeyboardDevice, relativePosition Vector2i) MouseEvent {
	return MouseEvent{
		kind:     kind,
		mouse:    mouse,
		keyboard: keyboard,
		position: relativePosition,
	}
}

// NewMouseDragEvent builds a drag event.
func NewMouseDragEvent(mouse MouseDevice, keyboard KeyboardDevice, relativePosition Vector2i) MouseEvent {
	return NewMouseEvent(KindMouseDrag, mouse, keyboard, relativePosition)
}

// Kind returns the event's routing tag.
func (e MouseEvent) Kind() EventKind { return e.kind }

// Mouse returns the pointer device that produced the event.
func (e MouseEvent) Mouse() MouseDevice { return e.mouse }

// Keyboard returns the device holding modifier state for the event.
func (e MouseEvent) Keyboard() KeyboardDevice { return e.keyboard }

// RelativePosition returns the cursor position relative to the receiving element.
func (e MouseEvent) RelativePosition() Vector2i { return e.position }

// String formats the event for log lines.
func (e MouseEvent) String() string {
	return fmt.Sprintf("%s at %s", e.kind, e.position)
}
