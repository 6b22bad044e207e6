package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Scopes ScopesConfig `mapstructure:"scopes"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
}

// ScopesConfig lists the store scopes mounted at startup.
type ScopesConfig struct {
	Initial []int `mapstructure:"initial"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool   `mapstructure:"alt_screen"`
	Title     string `mapstructure:"title"`
}

var ErrNoScopes = errors.New("at least one scope is required")

// Load reads configuration from file and env. Env var overrides use prefix TWINCOUNTER_.
// An explicit path wins over TWINCOUNTER_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("scopes.initial", []int{0, 1})
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.title", "twincounter")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TWINCOUNTER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "twincounter"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TWINCOUNTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a missing default file is fine; an explicit one must exist
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	if len(c.Scopes.Initial) == 0 {
		return ErrNoScopes
	}
	return nil
}

// Path resolves where the config file lives: path itself when set, then
// TWINCOUNTER_CONFIG, then ~/.config/twincounter/config.toml.
func Path(path string) string {
	if path == "" {
		path = os.Getenv("TWINCOUNTER_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "twincounter", "config.toml")
	}
	return path
}

// Save writes the provided config to Path(path), creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("scopes.initial", cfg.Scopes.Initial)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.title", cfg.UI.Title)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
