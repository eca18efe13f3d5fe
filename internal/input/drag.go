package input

// OriginFunc returns the screen position of the element that receives drag events.
type OriginFunc func() Vector2i

// DragTracker turns polled device state into click, drag and release events.
//
// A press begins when a button goes from up to down between two polls; a
// button already held at the first poll does not count. The press frame yields
// a click event. A drag starts once the cursor leaves the dead zone around the
// press point, and every later frame whose cursor position differs from the
// previous one yields one drag event. Releasing the pressed button yields a
// release event and ends the drag; other buttons held at that moment do not
// start a new press until they are released and pressed again.
//
// Positions are relative to the element origin sampled at press time. While
// the element itself is being moved by the drag, that differs from its
// current origin.
type DragTracker struct {
	mouse    MouseDevice
	keyboard KeyboardDevice
	origin   OriginFunc

	// DeadZone is the distance in pixels the cursor must travel from the
	// press point before the first drag event.
	DeadZone int

	primed bool
	down   [len(buttons)]bool

	pressed     bool
	dragging    bool
	buttonIdx   int
	pressPos    Vector2i
	pressOrigin Vector2i
	lastPos     Vector2i
}

// NewDragTracker creates a tracker. A nil origin means screen coordinates.
func NewDragTracker(mouse MouseDevice, keyboard KeyboardDevice, origin OriginFunc) *DragTracker {
	if origin == nil {
		origin = func() Vector2i { return Vector2i{} }
	}
	return &DragTracker{
		mouse:    mouse,
		keyboard: keyboard,
		origin:   origin,
	}
}

// Poll samples the devices once and reports at most one event for the frame.
func (t *DragTracker) Poll() (MouseEvent, bool) {
	pos := t.mouse.Position()

	prev := t.down
	for i, b := range buttons {
		t.down[i] = t.mouse.IsButtonDown(b)
	}
	if !t.primed {
		t.primed = true
		return MouseEvent{}, false
	}

	if !t.pressed {
		for i := range buttons {
			if t.down[i] && !prev[i] {
				t.pressed = true
				t.buttonIdx = i
				t.pressPos = pos
				t.lastPos = pos
				t.pressOrigin = t.origin()
				return t.event(KindMouseClick, pos), true
			}
		}
		return MouseEvent{}, false
	}

	if !t.down[t.buttonIdx] {
		t.Reset()
		return t.event(KindMouseRelease, pos), true
	}

	if !t.dragging {
		d := pos.Sub(t.pressPos)
		if d.X*d.X+d.Y*d.Y <= t.DeadZone*t.DeadZone {
			return MouseEvent{}, false
		}
		t.dragging = true
	} else if pos == t.lastPos {
		return MouseEvent{}, false
	}

	t.lastPos = pos
	return t.event(KindMouseDrag, pos), true
}

func (t *DragTracker) event(kind EventKind, pos Vector2i) MouseEvent {
	return NewMouseEvent(kind, t.mouse, t.keyboard, pos.Sub(t.pressOrigin))
}

// Dragging reports whether a drag is in progress.
func (t *DragTracker) Dragging() bool { return t.dragging }

// Pressed reports whether a button press is being tracked.
func (t *DragTracker) Pressed() bool { return t.pressed }

// Button returns the button holding the current press.
func (t *DragTracker) Button() MouseButton { return buttons[t.buttonIdx] }

// PressPosition returns the screen position of the current press.
func (t *DragTracker) PressPosition() Vector2i { return t.pressPos }

// PressOrigin returns the element origin sampled when the current press began.
func (t *DragTracker) PressOrigin() Vector2i { return t.pressOrigin }

// Reset drops any press or drag in progress. Buttons still held stay
// ignored until they are pressed again.
func (t *DragTracker) Reset() {
	t.pressed = false
	t.dragging = false
}
