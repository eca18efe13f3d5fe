package display

import "github.com/junsooki/nuidrag/internal/input"

// Display renders the draggable element and produces drag events.
type Display interface {
	Run() error
}

// EventCallback is called for every click, drag and release event the display produces.
type EventCallback func(e input.MouseEvent)

// Options configures an EbitenDisplay.
type Options struct {
	Width  int
	Height int
	Title  string

	// ElementOrigin and ElementSize give the initial screen rectangle of the
	// draggable element.
	ElementOrigin input.Vector2i
	ElementSize   input.Vector2i

	DeadZone int

	// Mouse and Keyboard default to the Ebitengine devices.
	Mouse    input.MouseDevice
	Keyboard input.KeyboardDevice
}
