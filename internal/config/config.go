package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"noise-rooms/internal/geometry"
	"noise-rooms/internal/logger"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/rooms.yaml"

// Window holds the fixed output surface settings.
type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Camera holds projection and movement tuning for the first-person camera.
type Camera struct {
	FovY        float32 `yaml:"fov_y"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// Sphere holds the latitude/longitude subdivision of the generated sphere.
type Sphere struct {
	SegmentsX int `yaml:"segments_x"`
	SegmentsY int `yaml:"segments_y"`
}

// Shaders selects where shading variant sources come from. Empty Dir uses the embedded set.
// Strict turns any uniform contract mismatch found at load time into a startup failure.
// Watch recompiles every variant when a file under Dir changes.
type Shaders struct {
	Dir    string `yaml:"dir,omitempty"`
	Strict bool   `yaml:"strict"`
	Watch  bool   `yaml:"watch"`
}

// Debug holds overlay preferences. Persisted across runs by the console fps command.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// UI points the control panel at a stylesheet on disk. Empty uses the embedded sheet.
type UI struct {
	Stylesheet string `yaml:"stylesheet,omitempty"`
}

// Config is the whole viewer configuration.
type Config struct {
	Window  Window  `yaml:"window"`
	Camera  Camera  `yaml:"camera"`
	Sphere  Sphere  `yaml:"sphere"`
	Shaders Shaders `yaml:"shaders"`
	Debug   Debug   `yaml:"debug"`
	UI      UI      `yaml:"ui"`
	LogPath string  `yaml:"log_path"`
}

// Default returns the configuration the viewer ships with (1280×720, 45° FOV, 32×32 sphere, strict uniforms).
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Rooms",
			TargetFPS: 60,
		},
		Camera: Camera{
			FovY:        45,
			Near:        0.1,
			Far:         100,
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Sphere:  Sphere{SegmentsX: 32, SegmentsY: 32},
		Shaders: Shaders{Strict: true},
		LogPath: logger.DefaultPath,
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error and yields the defaults;
// a malformed or out-of-range file is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewer cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_y %v out of (0, 180)", c.Camera.FovY))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera near/far %v/%v invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Sphere.SegmentsX < 3 || c.Sphere.SegmentsY < 2 {
		errs = append(errs, fmt.Errorf("sphere segments %dx%d too small", c.Sphere.SegmentsX, c.Sphere.SegmentsY))
	}
	if (c.Sphere.SegmentsX+1)*(c.Sphere.SegmentsY+1) > geometry.MaxSphereVertices {
		errs = append(errs, fmt.Errorf("sphere segments %dx%d exceed %d vertices", c.Sphere.SegmentsX, c.Sphere.SegmentsY, geometry.MaxSphereVertices))
	}
	return errors.Join(errs...)
}

// Aspect returns the viewport width/height ratio.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}
