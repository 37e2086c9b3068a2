// Package config holds the tunables of the field and its hosts, with JSON
// load/save so a tuned setup can be kept next to the binary.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ResizePolicy decides what happens to node home positions when the viewport
// changes size.
type ResizePolicy string

const (
	// ResizeScale rescales every home proportionally to the new viewport.
	ResizeScale ResizePolicy = "scale"
	// ResizeFixed leaves homes where they were created.
	ResizeFixed ResizePolicy = "fixed"
)

// Config is the full configuration.
type Config struct {
	LogLevel string   `json:"log_level"`
	Field    Field    `json:"field"`
	Window   Window   `json:"window"`
	Terminal Terminal `json:"terminal"`
	Snapshot Snapshot `json:"snapshot"`
}

// Field tunes the simulation.
type Field struct {
	Nodes           int          `json:"nodes"`
	LinkDistance    float64      `json:"link_distance"`
	LinkProbability float64      `json:"link_probability"`
	ResizePolicy    ResizePolicy `json:"resize_policy"`
	Seed            int64        `json:"seed"`  // 0 picks a time-based seed
	Grain           float64      `json:"grain"` // backdrop noise amplitude, 0 disables
}

// Window configures the desktop host.
type Window struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	TPS       int    `json:"tps"`
	Resizable bool   `json:"resizable"`
}

// Terminal configures the terminal host. One cell covers CellWidth x
// CellHeight viewport pixels and is drawn as two stacked half-block pixels.
type Terminal struct {
	FrameMillis int     `json:"frame_millis"`
	CellWidth   float64 `json:"cell_width"`
	CellHeight  float64 `json:"cell_height"`
}

// Snapshot configures headless rendering.
type Snapshot struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Frames int     `json:"frames"`
	Scale  float64 `json:"scale"` // output pixels per viewport pixel
	Out    string  `json:"out"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Field: Field{
			Nodes:           25,
			LinkDistance:    120,
			LinkProbability: 0.4,
			ResizePolicy:    ResizeScale,
			Grain:           0.02,
		},
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Neural Field",
			TPS:       60,
			Resizable: true,
		},
		Terminal: Terminal{
			FrameMillis: 16, // ~60 FPS
			CellWidth:   8,
			CellHeight:  16,
		},
		Snapshot: Snapshot{
			Width:  800,
			Height: 600,
			Frames: 120,
			Scale:  1,
			Out:    "field.png",
		},
	}
}

// Load reads a JSON config from path on top of the defaults, so a file only
// needs the keys it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as indented JSON.
func Save(path string, cfg Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Marshal encodes cfg as indented JSON.
func (c Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Validate reports every invalid value, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Nodes < 0 {
		errs = append(errs, fmt.Errorf("field.nodes must be >= 0, got %d", c.Field.Nodes))
	}
	if c.Field.LinkDistance < 0 {
		errs = append(errs, fmt.Errorf("field.link_distance must be >= 0, got %g", c.Field.LinkDistance))
	}
	if c.Field.LinkProbability < 0 || c.Field.LinkProbability > 1 {
		errs = append(errs, fmt.Errorf("field.link_probability must be in [0, 1], got %g", c.Field.LinkProbability))
	}
	switch c.Field.ResizePolicy {
	case ResizeScale, ResizeFixed:
	default:
		errs = append(errs, fmt.Errorf("field.resize_policy must be %q or %q, got %q", ResizeScale, ResizeFixed, c.Field.ResizePolicy))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if c.Terminal.FrameMillis <= 0 {
		errs = append(errs, fmt.Errorf("terminal.frame_millis must be positive, got %d", c.Terminal.FrameMillis))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell size must be positive"))
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		errs = append(errs, fmt.Errorf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height))
	}
	if c.Snapshot.Frames < 0 {
		errs = append(errs, fmt.Errorf("snapshot.frames must be >= 0, got %d", c.Snapshot.Frames))
	}
	if c.Snapshot.Scale <= 0 {
		errs = append(errs, fmt.Errorf("snapshot.scale must be positive, got %g", c.Snapshot.Scale))
	}
	return errors.Join(errs...)
}
