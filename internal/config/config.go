// Package config loads runtime settings from the environment, an optional
// .env file and an optional vitalis.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "VITALIS"
	configName = "vitalis"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Export  ExportConfig  `mapstructure:"export"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	File   string `mapstructure:"file"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		HTTP:    HTTPConfig{Addr: "127.0.0.1:8080"},
		Export:  ExportConfig{Dir: "."},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads configuration from the working directory and $HOME/.vitalis.
func Load() (*Config, error) {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "."+configName))
	}
	return LoadFrom(dirs...)
}

// LoadFrom resolves settings in increasing precedence: defaults, the first
// vitalis.yaml found in dirs, then VITALIS_* environment variables. A .env
// file in the first dir is loaded into the environment without overriding
// variables that are already set.
func LoadFrom(dirs ...string) (*Config, error) {
	if len(dirs) > 0 {
		envFile := filepath.Join(dirs[0], ".env")
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("loading %s: %w", envFile, err)
			}
		}
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	def := DefaultConfig()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("http.addr", def.HTTP.Addr)
	v.SetDefault("export.dir", def.Export.Dir)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would fail later at startup.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format must be json or console, got %q", c.Log.Format)
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("config: http.addr must not be empty")
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		return errors.New("config: export.dir must not be empty")
	}
	return nil
}
