package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // console, json
}

// ShellConfig represents interactive shell presentation
type ShellConfig struct {
	Color       bool `json:"color" mapstructure:"color"`
	Animate     bool `json:"animate" mapstructure:"animate"`
	TypeDelayMS int  `json:"type_delay_ms" mapstructure:"type_delay_ms"`
	ClearScreen bool `json:"clear_screen" mapstructure:"clear_screen"`
}

// OutputConfig represents one-shot result rendering
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"` // text, json, yaml
}

// Config represents the main configuration
type Config struct {
	Log    LogConfig    `json:"log" mapstructure:"log"`
	Shell  ShellConfig  `json:"shell" mapstructure:"shell"`
	Output OutputConfig `json:"output" mapstructure:"output"`
}

// EnvPrefix is the prefix for environment overrides, e.g. CIPHERIUM_LOG_LEVEL
const EnvPrefix = "CIPHERIUM"

func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Shell defaults
	v.SetDefault("shell.color", true)
	v.SetDefault("shell.animate", true)
	v.SetDefault("shell.type_delay_ms", 15)
	v.SetDefault("shell.clear_screen", true)

	// Output defaults
	v.SetDefault("output.format", "text")
}

// Load reads configuration from path, or from config.yaml in the usual
// search locations when path is empty. A missing file falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.cipherium")
	}

	// Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			log.Debug().Msg("Config file not found, using defaults")
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or environment is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate normalises and checks enumerated fields
func (c *Config) Validate() error {
	level, err := ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	c.Log.Level = level

	format, err := ParseOutputFormat(c.Output.Format)
	if err != nil {
		return err
	}
	c.Output.Format = format

	if c.Shell.TypeDelayMS < 0 {
		return fmt.Errorf("shell.type_delay_ms cannot be negative: %d", c.Shell.TypeDelayMS)
	}
	return nil
}

// TypeDelay returns the per-character delay of the banner animation
func (c *Config) TypeDelay() time.Duration {
	return time.Duration(c.Shell.TypeDelayMS) * time.Millisecond
}
