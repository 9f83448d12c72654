package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Entity records the validated entity type under the key "entity".
func Entity(name string) slog.Attr {
	return slog.String("entity", name)
}

// Kind records the record kind selected on the command line under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Record records the zero-based position of an input record under the key "record".
func Record(index int) slog.Attr {
	return slog.Int("record", index)
}

// Source records the input file name under the key "source".
// If path is empty, it returns an empty Attr.
func Source(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("source", path)
}

// Outcome groups a validation outcome under the key "outcome".
func Outcome(o validator.Outcome) slog.Attr {
	return Group("outcome",
		slog.Bool("passed", o.Passed),
		slog.String("message", o.Message),
	)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
