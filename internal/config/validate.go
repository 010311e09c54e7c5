package config

import (
	"errors"
	"net/url"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}

	base := strings.TrimSpace(cfg.Backend.BaseURL)
	if base == "" {
		errs = append(errs, "backend.base_url is required")
	} else if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "backend.base_url must be an absolute http(s) URL")
	}

	if cfg.Backend.TimeoutSeconds < 0 {
		errs = append(errs, "backend.timeout_seconds must be >= 0")
	}
	if cfg.Backend.RatePerSec < 0 {
		errs = append(errs, "backend.rate_per_sec must be >= 0")
	}
	if cfg.Feed.PageSize < 0 {
		errs = append(errs, "feed.page_size must be >= 0")
	}
	if cfg.Feed.AutoRefreshSeconds < 0 {
		errs = append(errs, "feed.auto_refresh_seconds must be >= 0")
	}
	if cfg.Toast.DurationMS < 0 || cfg.Toast.TickMS < 0 {
		errs = append(errs, "toast durations must be >= 0")
	}
	if cfg.Toast.TickMS > 0 && cfg.Toast.DurationMS > 0 && cfg.Toast.TickMS > cfg.Toast.DurationMS {
		errs = append(errs, "toast.tick_ms must not exceed toast.duration_ms")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
