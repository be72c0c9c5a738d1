package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// WithLogger stores a request-scoped logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or the fallback when none is set.
func FromContext(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	if ctx == nil {
		return &fallback
	}
	logger := zerolog.Ctx(ctx)
	// zerolog.Ctx returns a disabled logger when none is stored.
	if logger.GetLevel() == zerolog.Disabled {
		return &fallback
	}
	return logger
}
