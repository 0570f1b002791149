package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting user and request id.
// A *gin.Context works here since it resolves string keys from its key store.
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if username, ok := ctx.Value("username").(string); ok && username != "" {
		logger.Entry = logger.Entry.WithField("user", username)
	} else if userID, ok := ctx.Value("user_id").(string); ok && userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// Component returns a logger tagged with a component name (services, workers)
func Component(name string) *Logger {
	return New().WithField("component", name)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
