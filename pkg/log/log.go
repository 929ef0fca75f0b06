// Package log provides structured logging for logreg on top of zerolog.
//
// A single process-wide zerolog.Logger is configured with SetupLogger (or
// SetOutput in tests). Components obtain a named Logger with
// GetLoggerWithName and attach context with With:
//
//	logger := log.GetLoggerWithName("logistic").With(log.OperationKey, log.OperationCost)
//	logger.Debug("cost evaluated", log.SamplesKey, m, log.CostKey, cost)
//
// Callers that want zerolog's fluent API directly can use GetLogger.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Well-known field keys.
const (
	ComponentKey  = "component"
	ModelNameKey  = "model"
	OperationKey  = "operation"
	SamplesKey    = "samples"
	FeaturesKey   = "features"
	DegreeKey     = "degree"
	LambdaKey     = "lambda"
	CostKey       = "cost"
	DurationMsKey = "duration_ms"
	PathKey       = "path"
)

// Operation names used as OperationKey values.
const (
	OperationMapFeature   = "map_feature"
	OperationCost         = "cost_function"
	OperationPredict      = "predict"
	OperationEvaluateGrid = "evaluate_grid"
	OperationRender       = "render"
)

// Logger is the key/value logging interface used by logreg packages.
// fields alternate string keys and arbitrary values.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

var (
	mu     sync.RWMutex
	global = newDefault(os.Stderr, zerolog.InfoLevel)
)

func newDefault(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetupLogger configures the global logger for human-readable console output
// at the given level ("debug", "info", "warn", "error", ...). Unknown levels
// fall back to info.
func SetupLogger(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	mu.Lock()
	global = newDefault(out, lvl)
	mu.Unlock()
}

// SetOutput redirects the global logger to w as JSON lines at level.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	global = newDefault(w, level)
	mu.Unlock()
}

// GetLogger returns a copy of the global zerolog logger.
func GetLogger() *zerolog.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	return &l
}

// GetLoggerWithName returns a Logger tagged with the component name.
// The logger resolves the global configuration on every call, so loggers
// created before SetupLogger still honor it.
func GetLoggerWithName(name string) Logger {
	return &zerologAdapter{fields: []interface{}{ComponentKey, name}}
}

// LogError logs err at error level on the global logger, including the
// stack trace detail carried by cockroachdb/errors.
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	GetLogger().Error().
		Err(err).
		Str("detail", fmt.Sprintf("%+v", err)).
		Msg(msg)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type zerologAdapter struct {
	fields []interface{}
}

func (a *zerologAdapter) event(e *zerolog.Event, msg string, fields []interface{}) {
	if e == nil {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = e.Err(err)
			fields = fields[1:]
		}
	}
	e.Fields(a.fields).Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Debug(msg string, fields ...interface{}) {
	a.event(GetLogger().Debug(), msg, fields)
}

func (a *zerologAdapter) Info(msg string, fields ...interface{}) {
	a.event(GetLogger().Info(), msg, fields)
}

func (a *zerologAdapter) Warn(msg string, fields ...interface{}) {
	a.event(GetLogger().Warn(), msg, fields)
}

func (a *zerologAdapter) Error(msg string, fields ...interface{}) {
	a.event(GetLogger().Error(), msg, fields)
}

func (a *zerologAdapter) With(fields ...interface{}) Logger {
	merged := make([]interface{}, 0, len(a.fields)+len(fields))
	merged = append(merged, a.fields...)
	merged = append(merged, fields...)
	return &zerologAdapter{fields: merged}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (n nopLogger) With(...interface{}) Logger { return n }
