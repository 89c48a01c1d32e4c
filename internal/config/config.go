package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds window, camera, scene and logging settings.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Scene  SceneConfig  `toml:"scene"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type CameraConfig struct {
	TransitionDuration Duration `toml:"transition_duration"`
	Easing             string   `toml:"easing"`
	ViewpointFile      string   `toml:"viewpoint_file"`
	WatchViewpoints    bool     `toml:"watch_viewpoints"`
	// Live animates switches; false applies them instantly.
	Live bool `toml:"live"`
}

type SceneConfig struct {
	ShowGrid  bool `toml:"show_grid"`
	Wireframe bool `toml:"wireframe"`
}

type LogConfig struct {
	Dir         string `toml:"dir"`
	Development bool   `toml:"development"`
	Debug       bool   `toml:"debug"`
}

// Duration decodes Go duration strings such as "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Flags are command line overrides. Zero values leave the config alone.
type Flags struct {
	ViewpointFile string
	LogDir        string
	Debug         bool
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Barista Simulator",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			TransitionDuration: Duration{500 * time.Millisecond},
			Easing:             "ease-in-out",
			ViewpointFile:      "viewpoints.yaml",
			Live:               true,
		},
		Scene: SceneConfig{
			ShowGrid: true,
		},
		Log: LogConfig{
			Dir:         "Logs",
			Development: true,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overwriting variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load env %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from BARISTA_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("BARISTA_VIEWPOINTS"); v != "" {
		c.Camera.ViewpointFile = v
	}
	if v := os.Getenv("BARISTA_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	if v := os.Getenv("BARISTA_EASING"); v != "" {
		c.Camera.Easing = v
	}
	if v := os.Getenv("BARISTA_TRANSITION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: BARISTA_TRANSITION: %w", err)
		}
		c.Camera.TransitionDuration = Duration{d}
	}
	if v := os.Getenv("BARISTA_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: BARISTA_DEBUG: %w", err)
		}
		c.Log.Debug = debug
	}
	return nil
}

// Resolve applies CLI flags, which take priority over file and environment.
func (c *Config) Resolve(flags Flags) {
	if flags.ViewpointFile != "" {
		c.Camera.ViewpointFile = flags.ViewpointFile
	}
	if flags.LogDir != "" {
		c.Log.Dir = flags.LogDir
	}
	if flags.Debug {
		c.Log.Debug = true
	}
}
