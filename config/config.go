package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"math-snake/game"
	"math-snake/game/types"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "term"
)

// Config is everything the entry point needs to build and drive a game
type Config struct {
	Game         game.Config
	TickInterval time.Duration
	Window       types.Size
	Seed         uint64 // 0 means seed from the clock
	Frontend     string
}

// fileConfig mirrors the YAML layout
type fileConfig struct {
	Operation  string `yaml:"operation"`
	Difficulty int    `yaml:"difficulty"`
	ColorMode  string `yaml:"color_mode"`
	TickMillis int    `yaml:"tick_ms"`
	Seed       uint64 `yaml:"seed"`
	Frontend   string `yaml:"frontend"`
	Window     struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
}

func Default() Config {
	return Config{
		Game:         game.DefaultConfig(),
		TickInterval: game.DefaultTickInterval,
		Window:       types.DefaultWindow,
		Frontend:     FrontendRaylib,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML; unset fields keep their defaults and unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if fc.Operation != "" {
		op, err := types.ParseOperation(fc.Operation)
		if err != nil {
			return Config{}, err
		}
		cfg.Game.Operation = op
	}
	if fc.Difficulty != 0 {
		cfg.Game.Difficulty = types.Difficulty(fc.Difficulty)
	}
	if fc.ColorMode != "" {
		mode, err := types.ParseColorMode(fc.ColorMode)
		if err != nil {
			return Config{}, err
		}
		cfg.Game.ColorMode = mode
	}
	if fc.TickMillis != 0 {
		cfg.TickInterval = time.Duration(fc.TickMillis) * time.Millisecond
	}
	if fc.Window.Width != 0 {
		cfg.Window.Width = fc.Window.Width
	}
	if fc.Window.Height != 0 {
		cfg.Window.Height = fc.Window.Height
	}
	if fc.Frontend != "" {
		cfg.Frontend = fc.Frontend
	}
	cfg.Seed = fc.Seed

	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with, including windows too
// small to hold an answer field at the hardest layout.
func (c Config) Validate() error {
	if !c.Game.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d out of range 1-5", int(c.Game.Difficulty))
	}
	if !c.Game.Operation.Valid() {
		return fmt.Errorf("invalid operation %d", int(c.Game.Operation))
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Frontend != FrontendRaylib && c.Frontend != FrontendTerminal {
		return fmt.Errorf("unknown frontend %q (want %q or %q)", c.Frontend, FrontendRaylib, FrontendTerminal)
	}
	for _, d := range types.Difficulties {
		grid := types.LayoutFor(d, c.Window).Grid
		// The snake starts at the center, which may lie inside the interior
		if grid.Interior().Area()-1 < types.FieldSize {
			return fmt.Errorf("window %s too small for %s (grid %dx%d)", c.Window, d, grid.Width, grid.Height)
		}
	}
	return nil
}
