// Package config handles configuration file loading and parsing.
//
// Values are layered: built-in defaults, then the TOML file, then
// WEBSHELL_ environment variables (WEBSHELL_NOTIFICATIONS__ON_ERROR=fatal).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	koanftoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "WEBSHELL_"

// Notification backends.
const (
	BackendAuto  = "auto"
	BackendDBus  = "dbus"
	BackendBeeep = "beeep"
)

// Notification failure policies.
const (
	OnErrorLog   = "log"
	OnErrorFatal = "fatal"
)

// Config represents the webshell configuration.
type Config struct {
	Log           LogConfig          `koanf:"log" toml:"log"`
	Window        WindowConfig       `koanf:"window" toml:"window"`
	Notifications NotificationConfig `koanf:"notifications" toml:"notifications"`
	Sound         SoundConfig        `koanf:"sound" toml:"sound"`
	Links         LinksConfig        `koanf:"links" toml:"links"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level" toml:"level" validate:"oneof=debug info warn error"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int `koanf:"width" toml:"width" validate:"min=320,max=10000"`
	Height int `koanf:"height" toml:"height" validate:"min=240,max=10000"`
}

// NotificationConfig holds OS notification settings.
type NotificationConfig struct {
	Backend string   `koanf:"backend" toml:"backend" validate:"oneof=auto dbus beeep"`
	OnError string   `koanf:"on_error" toml:"on_error" validate:"oneof=log fatal"`
	Timeout Duration `koanf:"timeout" toml:"timeout"` // 0 = server default
	Urgency string   `koanf:"urgency" toml:"urgency" validate:"oneof=low normal critical"`
}

// SoundConfig holds the notification chime settings.
type SoundConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	File    string `koanf:"file" toml:"file" validate:"required_if=Enabled true"` // wav, ogg or mp3
	Volume  int    `koanf:"volume" toml:"volume" validate:"min=0,max=100"`
}

// LinksConfig holds external link handling settings.
type LinksConfig struct {
	OpenExternal bool `koanf:"open_external" toml:"open_external"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		Notifications: NotificationConfig{
			Backend: BackendAuto,
			OnError: OnErrorLog,
			Timeout: 0,
			Urgency: "normal",
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  80,
		},
		Links: LinksConfig{
			OpenExternal: true,
		},
	}
}

// defaultValues flattens DefaultConfig into koanf keys.
func defaultValues() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"log.level":              d.Log.Level,
		"window.width":           d.Window.Width,
		"window.height":          d.Window.Height,
		"notifications.backend":  d.Notifications.Backend,
		"notifications.on_error": d.Notifications.OnError,
		"notifications.timeout":  d.Notifications.Timeout.String(),
		"notifications.urgency":  d.Notifications.Urgency,
		"sound.enabled":          d.Sound.Enabled,
		"sound.file":             d.Sound.File,
		"sound.volume":           d.Sound.Volume,
		"links.open_external":    d.Links.OpenExternal,
	}
}

// Path returns the default config file path under the user config dir
// (XDG_CONFIG_HOME on Linux).
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "webshell", "config.toml"), nil
}

// Load loads configuration from path, or from Path() when path is empty.
// A missing file yields the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	k := koanf.New(".")

	for key, value := range defaultValues() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.Sound.File = expandPath(cfg.Sound.File)

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Notifications.Timeout < 0 {
		return fmt.Errorf("notifications.timeout must not be negative, got %s", c.Notifications.Timeout)
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// envTransform converts environment variable names to config keys.
// Example: WEBSHELL_NOTIFICATIONS__ON_ERROR -> notifications.on_error
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
