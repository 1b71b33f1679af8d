package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSourceURL(t *testing.T) {
	_, err := Load(nil, "")
	assert.Error(t, err)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source_url", "https://council.example/register", "")

	cfg, err := Load(flags, "")
	require.NoError(t, err)

	assert.Equal(t, "https://council.example/register", cfg.SourceURL)
	assert.Equal(t, "devappscraper-records.jsonl", cfg.StorePath)
	assert.Equal(t, "terminal", cfg.LogStyle)
	assert.Equal(t, 1.0, cfg.RequestsPerSecond)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source_url", "https://council.example/register", "")
	flags.String("log_style", "json", "")
	require.NoError(t, flags.Set("log_style", "json"))

	cfg, err := Load(flags, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogStyle)
}

func TestConfig_PolitenessDelay(t *testing.T) {
	cfg := Config{RequestsPerSecond: 2}
	assert.Equal(t, 500*time.Millisecond, cfg.PolitenessDelay())

	zero := Config{RequestsPerSecond: 0}
	assert.Equal(t, time.Duration(0), zero.PolitenessDelay())
}
