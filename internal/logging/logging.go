package logging

import (
	"io"
	"strings"

	"github.com/remiges-tech/logharbour/logharbour"
)

var priorities = map[string]logharbour.LogPriority{
	"debug2": logharbour.Debug2,
	"debug1": logharbour.Debug1,
	"debug":  logharbour.Debug0,
	"debug0": logharbour.Debug0,
	"info":   logharbour.Info,
	"warn":   logharbour.Warn,
	"error":  logharbour.Err,
	"crit":   logharbour.Crit,
}

// ParsePriority maps a LOG_LEVEL value to a logharbour priority.
// Unknown values fall back to info.
func ParsePriority(level string) logharbour.LogPriority {
	if p, ok := priorities[strings.ToLower(strings.TrimSpace(level))]; ok {
		return p
	}
	return logharbour.Info
}

// New creates a logharbour logger for app writing to w at the given level.
func New(app, level string, w io.Writer) *logharbour.Logger {
	lctx := logharbour.NewLoggerContext(ParsePriority(level))
	return logharbour.NewLogger(lctx, app, w)
}
