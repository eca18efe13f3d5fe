package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration.
type Config struct {
	Width    int
	Height   int
	Title    string
	Element  Rect
	DeadZone int
	Verbose  bool
}

// Rect is an element rectangle given as x,y,w,h on the command line.
type Rect struct {
	X, Y, W, H int
}

// String formats r as x,y,w,h.
func (r *Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
}

// Set parses x,y,w,h into r. Width and height must be positive.
func (r *Rect) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("rect %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("rect %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return fmt.Errorf("rect %q: width and height must be positive", s)
	}
	r.X, r.Y, r.W, r.H = v[0], v[1], v[2], v[3]
	return nil
}

// ParseFlags parses flags for the dragview binary.
func ParseFlags() (*Config, error) {
	return parseArgs(flag.CommandLine, os.Args[1:])
}

func parseArgs(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{Element: Rect{X: 100, Y: 100, W: 160, H: 120}}
	fs.IntVar(&cfg.Width, "width", 1280, "Window width")
	fs.IntVar(&cfg.Height, "height", 720, "Window height")
	fs.StringVar(&cfg.Title, "title", "Drag View", "Window title")
	fs.Var(&cfg.Element, "element", "Draggable element rectangle x,y,w,h")
	fs.IntVar(&cfg.DeadZone, "deadzone", 4, "Pixels the cursor must move before a drag starts")
	fs.BoolVar(&cfg.Verbose, "v", false, "Log every drag event")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d: must be positive", cfg.Width, cfg.Height)
	}
	if cfg.DeadZone < 0 {
		return nil, fmt.Errorf("deadzone %d: must not be negative", cfg.DeadZone)
	}
	return cfg, nil
}
