package main

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/batch"
	"github.com/fwojciec/docparse/fs"
	"github.com/fwojciec/docparse/htmltomarkdown"
	docslog "github.com/fwojciec/docparse/slog"
	"github.com/fwojciec/docparse/trafilatura"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	parser := deps.Parser
	writers := []docparse.ConversionWriter{deps.Conversions}
	if c.Out != "" {
		writers = append(writers, fs.NewWriter(c.Out))
	}

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		parser = docslog.NewLoggingParser(parser, logger)
		for i, w := range writers {
			writers[i] = docslog.NewLoggingConversionWriter(w, logger)
		}
	}

	converter := &batch.Converter{
		Parser:      parser,
		Extractor:   trafilatura.NewExtractor(),
		Markdown:    htmltomarkdown.NewConverter(),
		Writers:     writers,
		Concurrency: c.Concurrency,
		Language:    c.Language,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Converting %d files\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", event.Path)
		}
	}

	result, err := converter.ConvertFiles(deps.Ctx, c.Paths, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d conversions (%s)\n", result.Saved, batch.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "Failed %d\n", result.Failed)
	}

	return nil
}
