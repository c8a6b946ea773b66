package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"redline/internal/wordfreq"
)

const (
	configDirName  = "redline"
	configFileName = "config.toml"
	envPrefix      = "redline"
)

type Config struct {
	Output   string         `mapstructure:"output" json:"output" yaml:"output"`
	Color    string         `mapstructure:"color" json:"color" yaml:"color"`
	Tokens   TokensConfig   `mapstructure:"tokens" json:"tokens" yaml:"tokens"`
	Sections SectionsConfig `mapstructure:"sections" json:"sections" yaml:"sections"`
	Render   RenderConfig   `mapstructure:"render" json:"render" yaml:"render"`
	Server   ServerConfig   `mapstructure:"server" json:"server" yaml:"server"`
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log"`
}

type TokensConfig struct {
	Mode string `mapstructure:"mode" json:"mode" yaml:"mode"`
	Fold bool   `mapstructure:"fold" json:"fold" yaml:"fold"`
}

type SectionsConfig struct {
	Delimiter string `mapstructure:"delimiter" json:"delimiter" yaml:"delimiter"`
}

type RenderConfig struct {
	Placeholder  string `mapstructure:"placeholder" json:"placeholder" yaml:"placeholder"`
	Style        string `mapstructure:"style" json:"style" yaml:"style"`
	GlamourStyle string `mapstructure:"glamour_style" json:"glamour_style" yaml:"glamour_style"`
	Width        int    `mapstructure:"width" json:"width" yaml:"width"`
}

type ServerConfig struct {
	Addr    string `mapstructure:"addr" json:"addr" yaml:"addr"`
	Token   string `mapstructure:"token" json:"token" yaml:"token"`
	MaxBody int64  `mapstructure:"max_body" json:"max_body" yaml:"max_body"`
}

type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
}

// TokenMode resolves the configured tokenizer.
func (c Config) TokenMode() wordfreq.TokenMode {
	mode, _ := wordfreq.ParseTokenMode(c.Tokens.Mode)
	return mode
}

// Load resolves configuration with precedence defaults < file < env. When
// path is empty the standard locations are searched; a missing file is not
// an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if home, err := configHome(); err == nil {
			v.AddConfigPath(filepath.Join(home, configDirName))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromPath loads a config file on top of the defaults.
func LoadFromPath(path string) (Config, error) {
	return Load(viper.New(), path)
}

// Default returns the configuration with no file or environment applied.
func Default() Config {
	v := viper.New()
	applyDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	normalize(&cfg)
	return cfg
}

func normalize(cfg *Config) {
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if strings.TrimSpace(cfg.Sections.Delimiter) == "" {
		cfg.Sections.Delimiter = "**Section"
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Output {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output must be text or json, got %q", c.Output))
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}
	if _, err := wordfreq.ParseTokenMode(c.Tokens.Mode); err != nil {
		errs = append(errs, fmt.Errorf("tokens.mode: %w", err))
	}
	if c.Render.Width <= 0 {
		errs = append(errs, fmt.Errorf("render.width must be greater than 0"))
	}
	if c.Server.MaxBody <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body must be greater than 0"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
