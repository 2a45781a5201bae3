// Package slog provides logging decorators for docparse services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docparse"
)

// Ensure LoggingParser implements docparse.Parser.
var _ docparse.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with operation logging.
type LoggingParser struct {
	next   docparse.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next docparse.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(text string, opts docparse.ParseOptions) (doc *docparse.Document, err error) {
	defer func(begin time.Time) {
		blocks := 0
		if doc != nil {
			blocks = len(doc.ContentBlocks)
		}
		p.logger.Info("parse",
			"source_type", opts.SourceType,
			"input_bytes", len(text),
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(text, opts)
}
