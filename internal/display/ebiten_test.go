package display

import (
	"reflect"
	"testing"

	"github.com/junsooki/nuidrag/internal/input"
)

type stubMouse struct {
	pos  input.Vector2i
	left bool
}

func (m *stubMouse) IsButtonDown(b input.MouseButton) bool {
	return b == input.MouseButtonLeft && m.left
}
func (m *stubMouse) Position() input.Vector2i { return m.pos }
func (m *stubMouse) Wheel() (float64, float64) { return 0, 0 }

type stubKeyboard struct{ shift bool }

func (k *stubKeyboard) IsKeyDown(key input.Key) bool { return key == input.KeyShift && k.shift }

func newTestDisplay(mouse *stubMouse, got *[]input.MouseEvent) *EbitenDisplay {
	return NewEbitenDisplay(Options{
		ElementOrigin: input.Vector2i{X: 100, Y: 100},
		ElementSize:   input.Vector2i{X: 50, Y: 50},
		Mouse:         mouse,
		Keyboard:      &stubKeyboard{shift: true},
	}, func(e input.MouseEvent) {
		*got = append(*got, e)
	})
}

func kinds(events []input.MouseEvent) []input.EventKind {
	out := make([]input.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind()
	}
	return out
}

func TestEbitenDisplayDragMovesElement(t *testing.T) {
	mouse := &stubMouse{pos: input.Vector2i{X: 110, Y: 120}}
	var got []input.MouseEvent
	d := newTestDisplay(mouse, &got)

	d.Update()
	mouse.left = true
	d.Update()
	mouse.pos = input.Vector2i{X: 130, Y: 115}
	d.Update()
	mouse.pos = input.Vector2i{X: 140, Y: 140}
	d.Update()

	want := []input.EventKind{input.KindMouseClick, input.KindMouseDrag, input.KindMouseDrag}
	if !reflect.DeepEqual(kinds(got), want) {
		t.Fatalf("kinds = %v, want %v", kinds(got), want)
	}
	// Positions stay relative to where the element was at press time.
	if p := got[0].RelativePosition(); p != (input.Vector2i{X: 10, Y: 20}) {
		t.Errorf("click at %v", p)
	}
	if p := got[1].RelativePosition(); p != (input.Vector2i{X: 30, Y: 15}) {
		t.Errorf("first drag at %v", p)
	}
	if p := got[2].RelativePosition(); p != (input.Vector2i{X: 40, Y: 40}) {
		t.Errorf("second drag at %v", p)
	}
	if m := input.ModifiersOf(got[2].Keyboard()); m != input.ModShift {
		t.Errorf("modifiers = %d, want shift", m)
	}
	if o := d.Origin(); o != (input.Vector2i{X: 130, Y: 120}) {
		t.Errorf("Origin() = %v, want (130, 120)", o)
	}

	mouse.left = false
	d.Update()
	mouse.pos = input.Vector2i{X: 0, Y: 0}
	d.Update()

	want = append(want, input.KindMouseRelease)
	if !reflect.DeepEqual(kinds(got), want) {
		t.Errorf("kinds after release = %v, want %v", kinds(got), want)
	}
	if o := d.Origin(); o != (input.Vector2i{X: 130, Y: 120}) {
		t.Errorf("element moved after release: %v", o)
	}
}

func TestEbitenDisplayDragOutsideElement(t *testing.T) {
	mouse := &stubMouse{pos: input.Vector2i{X: 10, Y: 10}}
	var got []input.MouseEvent
	d := newTestDisplay(mouse, &got)

	d.Update()
	mouse.left = true
	d.Update()
	mouse.pos = input.Vector2i{X: 20, Y: 20}
	d.Update()

	if len(got) != 2 || got[1].Kind() != input.KindMouseDrag {
		t.Fatalf("kinds = %v, want click then drag", kinds(got))
	}
	if p := got[1].RelativePosition(); p != (input.Vector2i{X: -80, Y: -80}) {
		t.Errorf("drag at %v", p)
	}
	if o := d.Origin(); o != (input.Vector2i{X: 100, Y: 100}) {
		t.Errorf("element moved by an outside drag: %v", o)
	}
}

func TestEbitenDisplayIgnoresButtonHeldAtStart(t *testing.T) {
	mouse := &stubMouse{pos: input.Vector2i{X: 110, Y: 110}, left: true}
	var got []input.MouseEvent
	d := newTestDisplay(mouse, &got)

	d.Update()
	mouse.pos = input.Vector2i{X: 140, Y: 140}
	d.Update()

	if len(got) != 0 {
		t.Errorf("kinds = %v, want none", kinds(got))
	}
	if o := d.Origin(); o != (input.Vector2i{X: 100, Y: 100}) {
		t.Errorf("Origin() = %v", o)
	}
}

func TestNewEbitenDisplayDefaults(t *testing.T) {
	d := NewEbitenDisplay(Options{}, nil)
	if d.opts.Width != 1280 || d.opts.Height != 720 {
		t.Errorf("size = %dx%d", d.opts.Width, d.opts.Height)
	}
	if _, ok := d.opts.Mouse.(EbitenMouse); !ok {
		t.Errorf("Mouse = %T, want EbitenMouse", d.opts.Mouse)
	}
	if _, ok := d.opts.Keyboard.(EbitenKeyboard); !ok {
		t.Errorf("Keyboard = %T, want EbitenKeyboard", d.opts.Keyboard)
	}
}

func TestContains(t *testing.T) {
	origin := input.Vector2i{X: 10, Y: 10}
	size := input.Vector2i{X: 5, Y: 5}
	tests := []struct {
		p    input.Vector2i
		want bool
	}{
		{input.Vector2i{X: 10, Y: 10}, true},
		{input.Vector2i{X: 14, Y: 14}, true},
		{input.Vector2i{X: 15, Y: 10}, false},
		{input.Vector2i{X: 9, Y: 12}, false},
	}
	for _, tt := range tests {
		if got := contains(origin, size, tt.p); got != tt.want {
			t.Errorf("contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
