package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/junsooki/nuidrag/internal/input"
)

// EbitenMouse reads pointer state from Ebitengine. Only valid inside the game loop.
type EbitenMouse struct{}

func (EbitenMouse) IsButtonDown(b input.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(ebitenButton(b))
}

func (EbitenMouse) Position() input.Vector2i {
	x, y := ebiten.CursorPosition()
	return input.Vector2i{X: x, Y: y}
}

func (EbitenMouse) Wheel() (dx, dy float64) {
	return ebiten.Wheel()
}

// EbitenKeyboard reads key state from Ebitengine. Only valid inside the game loop.
type EbitenKeyboard struct{}

func (EbitenKeyboard) IsKeyDown(k input.Key) bool {
	ek, ok := ebitenKeys[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyShift:   ebiten.KeyShift,
	input.KeyControl: ebiten.KeyControl,
	input.KeyAlt:     ebiten.KeyAlt,
	input.KeyMeta:    ebiten.KeyMeta,
}

func ebitenButton(b input.MouseButton) ebiten.MouseButton {
	switch b {
	case input.MouseButtonRight:
		return ebiten.MouseButtonRight
	case input.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
