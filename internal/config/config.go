package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Backend struct {
		BaseURL        string  `yaml:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"backend"`

	Feed struct {
		PageSize           int  `yaml:"page_size"`
		AutoRefreshSeconds int  `yaml:"auto_refresh_seconds"` // 0 disables
		FallbackEnabled    bool `yaml:"fallback_enabled"`
	} `yaml:"feed"`

	Toast struct {
		DurationMS int `yaml:"duration_ms"`
		TickMS     int `yaml:"tick_ms"`
	} `yaml:"toast"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) BackendTimeout() time.Duration {
	if c.Backend.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func (c Config) ToastDuration() time.Duration {
	if c.Toast.DurationMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Toast.DurationMS) * time.Millisecond
}

func (c Config) ToastTick() time.Duration {
	if c.Toast.TickMS <= 0 {
		return 30 * time.Millisecond
	}
	return time.Duration(c.Toast.TickMS) * time.Millisecond
}

func (c Config) FeedPageSize() int {
	if c.Feed.PageSize <= 0 {
		return 6
	}
	return c.Feed.PageSize
}
