package monitoring

import (
	"log/slog"
	"os"
	"time"
)

var startTime = time.Now()

// Logger provides enhanced structured logging with context
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add timestamp in RFC3339 format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// ViewLogger logs view-model assembly details
func (l *Logger) ViewLogger(snapshotID, category, mode string, dimensions int, duration time.Duration) {
	l.Info("View Built",
		"snapshot_id", snapshotID,
		"category", category,
		"mode", mode,
		"dimensions", dimensions,
		"duration_ms", duration.Milliseconds(),
	)
}

// ExplainLogger logs smoothing trace reconstruction details
func (l *Logger) ExplainLogger(code string, finalScore, rawScore int, duration time.Duration) {
	l.Info("Explanation Produced",
		"code", code,
		"final_score", finalScore,
		"reconstructed_raw", rawScore,
		"duration_ms", duration.Milliseconds(),
	)
}

// RegistryLogger logs registry load details
func (l *Logger) RegistryLogger(source string, categories, names int) {
	l.Info("Registry Loaded",
		"source", source,
		"categories", categories,
		"names", names,
	)
}

// SystemLogger logs system-level events
func (l *Logger) SystemLogger(event, details string) {
	l.Info("System Event",
		"event", event,
		"details", details,
		"uptime", time.Since(startTime).String(),
	)
}
