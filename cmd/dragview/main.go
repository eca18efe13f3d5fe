package main

import (
	"log"

	"github.com/junsooki/nuidrag/internal/config"
	"github.com/junsooki/nuidrag/internal/display"
	"github.com/junsooki/nuidrag/internal/input"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("Drag View starting")
	log.Printf("  Window:    %dx%d", cfg.Width, cfg.Height)
	log.Printf("  Element:   %s", &cfg.Element)
	log.Printf("  Dead zone: %d", cfg.DeadZone)

	drags := 0
	var disp display.Display = display.NewEbitenDisplay(display.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Title:         cfg.Title,
		ElementOrigin: input.Vector2i{X: cfg.Element.X, Y: cfg.Element.Y},
		ElementSize:   input.Vector2i{X: cfg.Element.W, Y: cfg.Element.H},
		DeadZone:      cfg.DeadZone,
	}, func(e input.MouseEvent) {
		switch e.Kind() {
		case input.KindMouseClick, input.KindMouseRelease:
			log.Printf("%s modifiers=%d", e, input.ModifiersOf(e.Keyboard()))
		case input.KindMouseDrag:
			drags++
			if cfg.Verbose {
				log.Printf("%s modifiers=%d", e, input.ModifiersOf(e.Keyboard()))
			}
		}
	})

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := disp.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}
	log.Printf("Drag View exiting after %d drag events", drags)
}
