// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubegrid/internal/logger"
)

// ErrInvalid is returned by Validate for settings the renderer cannot use.
var ErrInvalid = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Scene      SceneConfig      `yaml:"scene"`
	Projection ProjectionConfig `yaml:"projection"`
	Logging    LoggingConfig    `yaml:"logging"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds the cube grid and camera animation settings.
type SceneConfig struct {
	GridSize   int        `yaml:"grid_size"`   // Cubes per row and column
	Spacing    float32    `yaml:"spacing"`     // Distance between cube centers
	CubeSize   float32    `yaml:"cube_size"`   // Half-extent of a cube at rest
	PulseSpeed float32    `yaml:"pulse_speed"` // Radians per second
	SpinSpeed  float32    `yaml:"spin_speed"`  // Camera yaw, degrees per second
	Tilt       float32    `yaml:"tilt"`        // Camera pitch, degrees
	Distance   float32    `yaml:"distance"`    // Camera distance from the grid center
	Color      [3]float32 `yaml:"color"`
}

// ProjectionConfig holds perspective projection settings.
type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"` // Vertical, degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "cubegrid",
			Width:      640,
			Height:     480,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			GridSize:   10,
			Spacing:    1.0,
			CubeSize:   0.2,
			PulseSpeed: 10,
			SpinSpeed:  30,
			Tilt:       30,
			Distance:   10,
			Color:      [3]float32{0.709804, 0.415686, 0.831373},
		},
		Projection: ProjectionConfig{
			FOV:  30,
			Near: 1,
			Far:  100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "cubegrid",
		},
	}
}

// Validate checks the settings the transform math takes on trust.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Scene.GridSize <= 0 {
		return fmt.Errorf("%w: grid_size %d", ErrInvalid, c.Scene.GridSize)
	}
	p := c.Projection
	if p.FOV <= 0 || p.FOV >= 180 {
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrInvalid, p.FOV)
	}
	if p.Near <= 0 || p.Far <= p.Near {
		return fmt.Errorf("%w: need 0 < near < far, got near=%v far=%v", ErrInvalid, p.Near, p.Far)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
