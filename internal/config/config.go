package config

// Package config holds the statsview window constants and loads the runtime
// configuration. It supports a YAML config file with environment variable
// overrides.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WindowWidth  = 640
	WindowHeight = 480

	// Header bar holding the button and the status line
	HeaderHeight = 64

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 12
	ButtonY      = 20

	// Chart
	ChartPadding = 16
	FadeDuration = 1000 // ms
	SoundVolume  = -1.0
)

// Config represents the complete application configuration.
type Config struct {
	Window    WindowConfig  `mapstructure:"window"`
	Data      []float64     `mapstructure:"data"`
	StyleFile string        `mapstructure:"style_file"`
	Seed      int64         `mapstructure:"seed"`    // 0 picks a time-based seed
	Density   float64       `mapstructure:"density"` // 0 means 1
	Sound     SoundConfig   `mapstructure:"sound"`
	Fade      FadeConfig    `mapstructure:"fade"`
	Logging   LoggingConfig `mapstructure:"logging"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// SoundConfig controls the completion chime.
type SoundConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // beep volume, 0 is unchanged, each unit doubles/halves
}

// FadeConfig controls the fade-in of the chart layer.
type FadeConfig struct {
	DurationMS int `mapstructure:"duration_ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"` // "debug", "info", "quiet"
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"style":     "style_file",
	"seed":      "seed",
	"density":   "density",
	"sound":     "sound.enabled",
	"log-level": "logging.level",
}

// Load reads the configuration.
// Config file search order when path is empty:
//  1. ./statsview.yaml
//  2. ~/.statsview/statsview.yaml
//
// Environment variables override config file values, flags override both.
// Format: STATSVIEW_<SECTION>_<KEY>, e.g., STATSVIEW_SOUND_ENABLED
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("statsview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(homeDir(), ".statsview"))
	}

	v.SetEnvPrefix("STATSVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults, env vars and flags only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Stats View")

	v.SetDefault("data", []float64{500, 500, 500, 500})
	v.SetDefault("style_file", "")
	v.SetDefault("seed", 0)
	v.SetDefault("density", 0)

	v.SetDefault("sound.enabled", false)
	v.SetDefault("sound.volume", SoundVolume)

	v.SetDefault("fade.duration_ms", FadeDuration)

	v.SetDefault("logging.level", "info")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
