// Package obslog builds the zap logger used outside the table
// reconstruction engine itself: by the orchestration layer
// (internal/engine and the root Scraper) and the CLI. The engine's internal packages (geometry, vectorpath,
// gridbuild, textlayer, pagenorm, cellbind, tablerows, records) never log.
// They degrade silently to empty results, and it is internal/engine's job
// to turn that into a diagnostic.
package obslog

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the logger's output format.
type Style string

const (
	StyleTerminal Style = "terminal"
	StyleJSON     Style = "json"
	StyleNoop     Style = "noop"
)

// Config controls logger construction.
type Config struct {
	Style Style
	Level string // zapcore level name, e.g. "info", "debug"; empty defaults to info
}

// New builds a zap.Logger per cfg. A nil cfg, or a cfg with an empty Style,
// defaults to terminal style at info level.
func New(cfg *Config) *zap.Logger {
	style := StyleTerminal
	level := zapcore.InfoLevel

	if cfg != nil {
		if cfg.Style != "" {
			style = cfg.Style
		}
		if cfg.Level != "" {
			if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
				level = lvl
			}
		}
	}

	var logger *zap.Logger
	var err error

	switch style {
	case StyleNoop:
		logger = zap.NewNop()
	case StyleJSON:
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	case StyleTerminal:
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	default:
		log.Fatalf("obslog: invalid style %q: must be one of terminal, json, noop", style)
	}

	if err != nil {
		log.Fatalf("obslog: can't build zap logger: %v", err)
	}
	return logger
}

// ParseStyle validates s against the known Style values.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleTerminal, StyleJSON, StyleNoop:
		return Style(s), nil
	default:
		return "", fmt.Errorf("obslog: unknown logging style %q", s)
	}
}
