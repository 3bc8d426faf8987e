package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a level name (debug, info, warn, error).
// Unknown names fall back to info.
func NewWithLevel(w io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, engine, format string) {
	l.Debug("config loaded",
		"path", path,
		"engine", engine,
		"format", format)
}

// ConversionStarted logs the start of an export
func (l *Logger) ConversionStarted(source, engine, format string) {
	l.Info("conversion started",
		"source", source,
		"engine", engine,
		"format", format)
}

// Written logs a finished export
func (l *Logger) Written(source, dest string, size int, duration time.Duration) {
	l.Info("export written",
		"source", source,
		"dest", dest,
		"bytes", size,
		"duration", duration.Round(time.Millisecond))
}

// ConversionError logs a failed pipeline stage
func (l *Logger) ConversionError(source, stage string, err error) {
	l.Error("conversion failed",
		"source", source,
		"stage", stage,
		"error", err)
}

// EmptyRegion warns that the extracted editable region holds no content
func (l *Logger) EmptyRegion(source, selector string) {
	l.Warn("editable region is empty",
		"source", source,
		"selector", selector)
}

// URLAccepted logs a URL that passed validation
func (l *Logger) URLAccepted(raw, normalized, kind string) {
	l.Debug("url accepted",
		"raw", raw,
		"url", normalized,
		"kind", kind)
}

// URLRejected logs a refused URL with its reason code
func (l *Logger) URLRejected(raw, reason string) {
	l.Warn("url rejected",
		"raw", raw,
		"reason", reason)
}
