package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docparse"
)

// Ensure LoggingConversionWriter implements docparse.ConversionWriter.
var _ docparse.ConversionWriter = (*LoggingConversionWriter)(nil)

// LoggingConversionWriter wraps a ConversionWriter with operation
// logging.
type LoggingConversionWriter struct {
	next   docparse.ConversionWriter
	logger *slog.Logger
}

// NewLoggingConversionWriter creates a new LoggingConversionWriter.
func NewLoggingConversionWriter(next docparse.ConversionWriter, logger *slog.Logger) *LoggingConversionWriter {
	return &LoggingConversionWriter{next: next, logger: logger}
}

// CreateConversion delegates to the wrapped writer and logs the
// operation.
func (w *LoggingConversionWriter) CreateConversion(ctx context.Context, conv *docparse.Conversion) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("create conversion",
			"source_path", conv.SourcePath,
			"source_type", conv.SourceType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CreateConversion(ctx, conv)
}
