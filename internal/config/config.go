// Package config loads GeoQuiz settings from flags, environment, .env and
// an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GEOQUIZ_DB.
const EnvPrefix = "GEOQUIZ"

// Config holds application configuration.
type Config struct {
	DB             string        `mapstructure:"db"`              // SQLite path; empty means the default data dir
	Bank           string        `mapstructure:"bank"`            // question bank file; empty means the built-in bank
	LogFile        string        `mapstructure:"log_file"`        // debug log destination; empty disables logging
	NoticeDuration time.Duration `mapstructure:"notice_duration"` // how long a notice banner stays up
	KeepSnapshots  int           `mapstructure:"keep_snapshots"`  // saved positions retained after pruning
}

// New returns a viper instance with defaults and environment binding set up.
// Callers bind command-line flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("geoquiz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "geoquiz"))
	}

	v.SetDefault("db", "")
	v.SetDefault("bank", "")
	v.SetDefault("log_file", "")
	v.SetDefault("notice_duration", "2s")
	v.SetDefault("keep_snapshots", 5)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env, the config file (explicit path or search paths) and
// unmarshals the merged settings.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.NoticeDuration <= 0 {
		return nil, fmt.Errorf("notice_duration must be positive, got %s", cfg.NoticeDuration)
	}
	if cfg.KeepSnapshots < 1 {
		return nil, fmt.Errorf("keep_snapshots must be at least 1, got %d", cfg.KeepSnapshots)
	}
	return &cfg, nil
}
