// Package config holds the tunable constants of the simulation and the
// presentation backends. Values come from Default and may be overridden by
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"darkoffice/pkg/engine/input"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of
// range.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full configuration tree.
type Config struct {
	Screen     Screen     `yaml:"screen"`
	Camera     Camera     `yaml:"camera"`
	Simulation Simulation `yaml:"simulation"`
	Player     Player     `yaml:"player"`
	Guards     Guards     `yaml:"guards"`
	Render     Render     `yaml:"render"`
	Input      Input      `yaml:"input"`
	Log        Log        `yaml:"log"`
}

type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Camera struct {
	FOV              float64 `yaml:"fov"`               // radians
	RayStride        int     `yaml:"ray_stride"`        // screen columns per ray
	MaxRayDistance   float64 `yaml:"max_ray_distance"`  // world units
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // radians per pixel
}

// Simulation covers the world scale and the frame-delta policy.
type Simulation struct {
	CellSize      float64 `yaml:"cell_size"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds; larger deltas are clamped
	MaxSubStep    float64 `yaml:"max_sub_step"`    // seconds; clamped deltas are split
}

type Player struct {
	Speed         float64 `yaml:"speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	Radius        float64 `yaml:"radius"`
}

type Guards struct {
	Guard1Speed  float64 `yaml:"guard1_speed"`
	Guard2Speed  float64 `yaml:"guard2_speed"`
	DefaultSpeed float64 `yaml:"default_speed"`
	Radius       float64 `yaml:"radius"`
	JiggleRate   float64 `yaml:"jiggle_rate"` // nudge magnitude per second when stuck
}

type Render struct {
	MaxSprites  int     `yaml:"max_sprites"`  // 0 means no cap
	MinimapCell int     `yaml:"minimap_cell"` // pixels per grid cell, 0 hides the minimap
	FadeSeconds float64 `yaml:"fade_seconds"`
}

// Input rebinds actions: each key is an action such as "strafe_left",
// each value the single code it moves to, e.g. "key_z".
type Input struct {
	Bindings map[string]string `yaml:"bindings"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{Width: 1024, Height: 640, Title: "Dark Office"},
		Camera: Camera{
			FOV:              math.Pi / 3,
			RayStride:        2,
			MaxRayDistance:   2000,
			MouseSensitivity: 0.003,
		},
		Simulation: Simulation{
			CellSize:      64,
			MaxFrameDelta: 0.1,
			MaxSubStep:    1.0 / 60,
		},
		Player: Player{Speed: 150, RotationSpeed: 2.5, Radius: 12},
		Guards: Guards{
			Guard1Speed:  70,
			Guard2Speed:  90,
			DefaultSpeed: 60,
			Radius:       12,
			JiggleRate:   6,
		},
		Render: Render{MaxSprites: 64, MinimapCell: 10, FadeSeconds: 0.6},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Parse decodes YAML on top of the defaults, so a partial document only
// overrides the keys it names.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML file. A missing file is not an error: the defaults are
// returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value the simulation divides by or loops over.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Screen.Width > 0, "screen.width"},
		{c.Screen.Height > 0, "screen.height"},
		{c.Camera.FOV > 0 && c.Camera.FOV < math.Pi, "camera.fov"},
		{c.Camera.RayStride > 0, "camera.ray_stride"},
		{c.Camera.MaxRayDistance > 0, "camera.max_ray_distance"},
		{c.Simulation.CellSize > 0, "simulation.cell_size"},
		{c.Simulation.MaxFrameDelta > 0, "simulation.max_frame_delta"},
		{c.Simulation.MaxSubStep > 0, "simulation.max_sub_step"},
		{c.Player.Speed >= 0, "player.speed"},
		{c.Player.Radius > 0 && c.Player.Radius < c.Simulation.CellSize/2, "player.radius"},
		{c.Guards.Radius > 0 && c.Guards.Radius < c.Simulation.CellSize/2, "guards.radius"},
		{c.Guards.JiggleRate >= 0, "guards.jiggle_rate"},
		{c.Render.MaxSprites >= 0, "render.max_sprites"},
		{c.Render.MinimapCell >= 0, "render.minimap_cell"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.field)
		}
	}
	for action := range c.Input.Bindings {
		if _, ok := input.ActionFromKey(action); !ok {
			return fmt.Errorf("%w: input.bindings.%s", ErrInvalid, action)
		}
	}
	return nil
}
