package display

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/junsooki/nuidrag/internal/input"
)

var (
	elementColor     = color.RGBA{0x3c, 0x78, 0xd8, 0xff}
	elementDragColor = color.RGBA{0xe8, 0x8a, 0x1a, 0xff}
)

// EbitenDisplay draws one draggable element with Ebitengine and reports drags on it.
type EbitenDisplay struct {
	mu      sync.Mutex
	opts    Options
	tracker *input.DragTracker
	onEvent EventCallback

	origin  input.Vector2i
	holding bool
	last    input.MouseEvent
	count   int

	elementImage *ebiten.Image
}

// NewEbitenDisplay creates an Ebitengine-based display.
func NewEbitenDisplay(opts Options, onEvent EventCallback) *EbitenDisplay {
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 1280, 720
	}
	if opts.Title == "" {
		opts.Title = "Drag View"
	}
	if opts.Mouse == nil {
		opts.Mouse = EbitenMouse{}
	}
	if opts.Keyboard == nil {
		opts.Keyboard = EbitenKeyboard{}
	}

	d := &EbitenDisplay{
		opts:    opts,
		onEvent: onEvent,
		origin:  opts.ElementOrigin,
	}
	d.tracker = input.NewDragTracker(opts.Mouse, opts.Keyboard, d.Origin)
	d.tracker.DeadZone = opts.DeadZone
	return d
}

// Origin returns the current screen position of the element.
func (d *EbitenDisplay) Origin() input.Vector2i {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.origin
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (d *EbitenDisplay) Run() error {
	ebiten.SetWindowSize(d.opts.Width, d.opts.Height)
	ebiten.SetWindowTitle(d.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	e, ok := d.tracker.Poll()

	d.mu.Lock()
	if ok {
		switch e.Kind() {
		case input.KindMouseClick:
			d.holding = contains(d.tracker.PressOrigin(), d.opts.ElementSize, d.tracker.PressPosition())
		case input.KindMouseDrag:
			if d.holding {
				d.origin = dragOrigin(d.tracker.PressOrigin(), d.tracker.PressPosition(), d.opts.Mouse.Position())
			}
			d.count++
		case input.KindMouseRelease:
			d.holding = false
		}
		d.last = e
	}
	d.mu.Unlock()

	if ok && d.onEvent != nil {
		d.onEvent(e)
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	origin := d.origin
	holding := d.holding
	last, count := d.last, d.count
	d.mu.Unlock()

	size := d.opts.ElementSize
	if size.X > 0 && size.Y > 0 {
		if d.elementImage == nil ||
			d.elementImage.Bounds().Dx() != size.X ||
			d.elementImage.Bounds().Dy() != size.Y {
			d.elementImage = ebiten.NewImage(size.X, size.Y)
		}
		if holding {
			d.elementImage.Fill(elementDragColor)
		} else {
			d.elementImage.Fill(elementColor)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(origin.X), float64(origin.Y))
		screen.DrawImage(d.elementImage, op)
	}

	status := "drag the element"
	if count > 0 {
		status = fmt.Sprintf("%d drag events, last %s, modifiers %d",
			count, last, input.ModifiersOf(last.Keyboard()))
	}
	ebitenutil.DebugPrint(screen, status)
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// dragOrigin returns where the element sits when the cursor has moved from
// pressPos to cursor, given the element was at pressOrigin when pressed.
func dragOrigin(pressOrigin, pressPos, cursor input.Vector2i) input.Vector2i {
	return pressOrigin.Add(cursor.Sub(pressPos))
}

func contains(origin, size, p input.Vector2i) bool {
	return p.X >= origin.X && p.X < origin.X+size.X &&
		p.Y >= origin.Y && p.Y < origin.Y+size.Y
}
