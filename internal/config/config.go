// Package config loads mazeview configuration via viper.
//
// Precedence: command-line flags > MAZEVIEW_* environment variables >
// config file (~/.mazeview/config.yaml) > defaults. All keys have working
// defaults so the viewer runs with no config at all against a local
// asset server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete mazeview configuration.
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Serve    ServeConfig    `mapstructure:"serve"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DataConfig locates the published dataset assets.
type DataConfig struct {
	// BaseURL is the root the viewer fetches from. Relative image and
	// dataFile paths in the documents are resolved against it.
	BaseURL string `mapstructure:"base_url"`
	// DatasetPath is the JSONL gallery document, relative to BaseURL.
	DatasetPath string `mapstructure:"dataset_path"`
	// IndexPath is the task index manifest, relative to BaseURL.
	IndexPath string `mapstructure:"index_path"`
	// TimeoutSeconds bounds each fetch. There are no retries anywhere;
	// a timed-out fetch surfaces as a load error.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// PlaybackConfig controls trajectory autoplay.
type PlaybackConfig struct {
	// IntervalMs is the autoplay period between step advances.
	IntervalMs int `mapstructure:"interval_ms"`
}

// ServeConfig configures the local asset server.
type ServeConfig struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `mapstructure:"listen_addr"`
	// AssetDir is the directory of published JSON/JSONL/image assets.
	AssetDir string `mapstructure:"asset_dir"`
	// Watch enables fsnotify change logging for the asset directory.
	Watch bool `mapstructure:"watch"`
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// PlaybackInterval returns the autoplay period as a duration.
func (c *Config) PlaybackInterval() time.Duration {
	return time.Duration(c.Playback.IntervalMs) * time.Millisecond
}

// FetchTimeout returns the per-request fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Data.TimeoutSeconds) * time.Second
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("data.base_url", "http://127.0.0.1:8460")
	v.SetDefault("data.dataset_path", "dataset/layouts.jsonl")
	v.SetDefault("data.index_path", "tasks/index.json")
	v.SetDefault("data.timeout_seconds", 15)

	v.SetDefault("playback.interval_ms", 2000)

	v.SetDefault("serve.listen_addr", "127.0.0.1:8460")
	v.SetDefault("serve.asset_dir", "./assets")
	v.SetDefault("serve.watch", true)

	v.SetDefault("logging.file", filepath.Join(home, ".mazeview", "mazeview.log"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
}

// Load reads the configuration. cfgFile overrides the default config file
// location; a missing default file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MAZEVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".mazeview"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return nil, fmt.Errorf("reading config: %w", err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would break the viewer at runtime.
func (c *Config) Validate() error {
	if c.Data.BaseURL == "" {
		return fmt.Errorf("data.base_url must not be empty")
	}
	if c.Playback.IntervalMs <= 0 {
		return fmt.Errorf("playback.interval_ms must be positive, got %d", c.Playback.IntervalMs)
	}
	if c.Data.TimeoutSeconds <= 0 {
		return fmt.Errorf("data.timeout_seconds must be positive, got %d", c.Data.TimeoutSeconds)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug/info/warn/error", c.Logging.Level)
	}
	return nil
}
