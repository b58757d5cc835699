package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	// scopeFieldName defines the key for the "scope" field in structured logs.
	scopeFieldName = "scope"

	defaultScope = "[app]"
)

// New creates a zerolog.Logger writing human-readable lines to out at the
// given level. The scope field set by WithScope is rendered as "[SCOPE]"
// right before the message.
func New(out io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		// FormatPrepare runs just before printing; it turns the raw scope
		// value into its bracketed form.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = defaultScope
			}

			return nil
		},
		// The scope is printed through PartsOrder; keep it out of the
		// trailing key=value list.
		FieldsExclude: []string{scopeFieldName},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope returns a sub-logger tagged with the component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ParseLevel maps a level name to a zerolog.Level; debug forces DebugLevel
// regardless of name.
func ParseLevel(name string, debug bool) (zerolog.Level, error) {
	if debug {
		return zerolog.DebugLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}

	return lvl, nil
}
