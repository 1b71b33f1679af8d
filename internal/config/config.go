// Package config loads the scraper's settings from a YAML/ENV-backed
// viper.Viper instance, with cobra flags layered on top as overrides.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coregx/devappscraper/internal/obslog"
)

// Config is the scraper's full runtime configuration.
type Config struct {
	// SourceURL is the register page to fetch and scan for PDF links.
	SourceURL string
	// CommentURL is the fixed contact URL emitted as every record's
	// CommentURL field.
	CommentURL string
	// ProxyURL, if non-empty, routes HTTP requests through this proxy.
	ProxyURL string
	// RequestsPerSecond paces every HTTP request (the index page and each
	// PDF download); FetchBurst allows that many
	// requests before pacing kicks in.
	RequestsPerSecond float64
	FetchBurst        int
	// SampleSize caps how many discovered PDFs are processed per run; 0
	// means no cap.
	SampleSize int
	// StorePath is the JSON-lines file records are persisted to.
	StorePath string
	// LogStyle selects the logger's output format.
	LogStyle string
}

// defaults returns the configuration used when neither a config file, an
// environment variable, nor a flag sets a value.
func defaults() Config {
	return Config{
		RequestsPerSecond: 1,
		FetchBurst:        1,
		SampleSize:        0,
		StorePath:         "devappscraper-records.jsonl",
		LogStyle:          string(obslog.StyleTerminal),
	}
}

// Load builds a viper.Viper seeded with defaults, an optional config file,
// and the DEVAPPSCRAPER_-prefixed environment, then binds flags: a flag set
// explicitly takes precedence over both, and an unset flag's own default
// applies to a key that has no default and is set nowhere else.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEVAPPSCRAPER")
	v.AutomaticEnv()

	// source_url, comment_url and proxy_url have no default; registering an
	// empty one would shadow a bound flag's default value.
	d := defaults()
	v.SetDefault("requests_per_second", d.RequestsPerSecond)
	v.SetDefault("fetch_burst", d.FetchBurst)
	v.SetDefault("sample_size", d.SampleSize)
	v.SetDefault("store_path", d.StorePath)
	v.SetDefault("log_style", d.LogStyle)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	cfg := Config{
		SourceURL:         v.GetString("source_url"),
		CommentURL:        v.GetString("comment_url"),
		ProxyURL:          v.GetString("proxy_url"),
		RequestsPerSecond: v.GetFloat64("requests_per_second"),
		FetchBurst:        v.GetInt("fetch_burst"),
		SampleSize:        v.GetInt("sample_size"),
		StorePath:         v.GetString("store_path"),
		LogStyle:          v.GetString("log_style"),
	}

	if cfg.SourceURL == "" {
		return Config{}, fmt.Errorf("config: source_url is required")
	}

	return cfg, nil
}

// PolitenessDelay converts RequestsPerSecond into the equivalent inter-
// request delay, for diagnostics/logging purposes.
func (c Config) PolitenessDelay() time.Duration {
	if c.RequestsPerSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / c.RequestsPerSecond)
}
