package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	MeterRingSize   = 8192
	MeterWindow     = 2048
	SmoothingFactor = 0.6

	// Visualization parameters
	GlowSteps       = 24
	GlowMusicBoost  = 0.10
	ColorShiftSpeed = 0.01
)

// Validation limits and defaults
const (
	MinParticles = 1
	MaxParticles = 1000
	MinWindow    = 200

	DefaultStart        = "2025-03-01 00:00:00"
	DefaultVolume       = 0.9
	DefaultMaxParticles = 80
	DefaultLogLevel     = "info"
)

// StartLayouts are the accepted formats for the start instant, tried in order.
// Layouts without a zone are read in local time.
var StartLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Window is the initial window size in pixels
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config represents the application configuration
type Config struct {
	Start        string   `yaml:"start"`
	Music        string   `yaml:"music"`
	Volume       *float64 `yaml:"volume"` // Pointer to distinguish between 0 and unset
	MaxParticles int      `yaml:"max_particles"`
	Window       Window   `yaml:"window"`
	LogLevel     string   `yaml:"log_level"`

	// Reference is Start parsed in local time.
	Reference time.Time `yaml:"-"`
}

// Load loads configuration from a YAML file and applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 -- path comes from the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return finish(&cfg)
}

// Default returns the built-in configuration with environment overrides applied
func Default() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	applyDefaults(cfg)

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// VolumeOrDefault returns the configured volume
func (c *Config) VolumeOrDefault() float64 {
	if c.Volume == nil {
		return DefaultVolume
	}
	return *c.Volume
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.Start == "" {
		cfg.Start = DefaultStart
	}
	if cfg.Volume == nil {
		v := DefaultVolume
		cfg.Volume = &v
	}
	if cfg.MaxParticles == 0 {
		cfg.MaxParticles = DefaultMaxParticles
	}
	if cfg.Window.Width == 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = WindowHeight
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HEARTCLOCK_START"); val != "" {
		cfg.Start = val
	}

	if val := os.Getenv("HEARTCLOCK_MUSIC"); val != "" {
		cfg.Music = val
	}

	if val := os.Getenv("HEARTCLOCK_VOLUME"); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid HEARTCLOCK_VOLUME: must be a number, got %q", val)
		}
		cfg.Volume = &f
	}

	if val := os.Getenv("HEARTCLOCK_MAX_PARTICLES"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid HEARTCLOCK_MAX_PARTICLES: must be an integer, got %q", val)
		}
		cfg.MaxParticles = i
	}

	if val := os.Getenv("HEARTCLOCK_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	return nil
}

// ParseStart reads s with the first matching layout in StartLayouts. The
// result is always in time.Local; an explicit offset only fixes the instant.
func ParseStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range StartLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("start %q does not match any of %s", s, strings.Join(StartLayouts, ", "))
}

// validate validates the configuration and fills Reference
func validate(cfg *Config) error {
	ref, err := ParseStart(cfg.Start)
	if err != nil {
		return err
	}
	cfg.Reference = ref

	if v := *cfg.Volume; v < 0 || v > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", v)
	}

	if cfg.MaxParticles < MinParticles || cfg.MaxParticles > MaxParticles {
		return fmt.Errorf("max_particles must be between %d and %d, got %d", MinParticles, MaxParticles, cfg.MaxParticles)
	}

	if cfg.Window.Width < MinWindow || cfg.Window.Height < MinWindow {
		return fmt.Errorf("window must be at least %dx%d, got %dx%d", MinWindow, MinWindow, cfg.Window.Width, cfg.Window.Height)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	return nil
}
