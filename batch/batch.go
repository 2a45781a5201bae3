// Package batch provides parallel document conversion orchestration.
// It coordinates reading source files, extraction, parsing, and storage
// of conversion results.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/bloom"
)

// Input deduplication configuration.
const (
	// dedupeExpectedFiles is the expected number of files for Bloom filter sizing.
	dedupeExpectedFiles = 10000
	// dedupeFalsePositiveRate is the acceptable false positive rate for deduplication.
	dedupeFalsePositiveRate = 0.01
)

// Converter orchestrates batch conversion of source documents.
type Converter struct {
	Parser      docparse.Parser
	Extractor   docparse.Extractor
	Markdown    docparse.MarkdownConverter
	Writers     []docparse.ConversionWriter
	Concurrency int
	Language    string
}

// Result holds the outcome of a batch conversion.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
	Bytes   int
}

// ProgressEvent reports progress during a batch conversion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// convertResult holds the outcome of processing a single file.
type convertResult struct {
	position int
	path     string
	conv     *docparse.Conversion
	bytes    int
	err      error
}

// ConvertFiles converts all given files and saves the results through
// the configured writers. Duplicate paths and files whose content
// matches an earlier file are skipped. A failure in one file is
// isolated and does not affect the others. The progress callback, if
// provided, receives events as conversion proceeds.
func (c *Converter) ConvertFiles(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	// The filter holds both input paths and content hashes. Paths are
	// checked before dispatch so workers never race on the filter;
	// content hashes are checked in the sequential save loop, so the
	// first file in input order wins.
	filter := bloom.NewFilter(dedupeExpectedFiles, dedupeFalsePositiveRate)
	queue := make([]string, 0, len(paths))
	var skipped int
	for _, path := range paths {
		if filter.Test(path) {
			skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type: ProgressSkipped,
					Path: path,
				})
			}
			continue
		}
		filter.Add(path)
		queue = append(queue, path)
	}

	if len(queue) == 0 {
		return &Result{Skipped: skipped}, nil
	}

	// Set up concurrency
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Channel for collecting results
	resultCh := make(chan convertResult, len(queue))

	// Progress tracking
	var completed atomic.Int64
	total := len(queue)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range queue {
			g.Go(func() error {
				result := c.processFile(gctx, i, path)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]convertResult, len(queue))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Path:      result.path,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					Path:      result.path,
				})
			}
		}
	}

	// Save conversions and accumulate stats
	var savedCount int
	var totalBytes int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		if filter.Test(result.conv.ContentHash) {
			skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type: ProgressSkipped,
					Path: result.path,
				})
			}
			continue
		}
		filter.Add(result.conv.ContentHash)

		if err := c.save(ctx, result.conv); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalBytes += result.bytes
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:   savedCount,
		Failed:  failedCount,
		Skipped: skipped,
		Bytes:   totalBytes,
	}, nil
}

// processFile reads and converts a single file.
func (c *Converter) processFile(ctx context.Context, position int, path string) convertResult {
	result := convertResult{
		position: position,
		path:     path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.err = err
		return result
	}
	content := string(data)
	result.bytes = len(data)

	sourceType := SourceTypeForPath(path)

	var title string
	text := content
	if sourceType == "html" {
		extracted, err := c.Extractor.Extract(content)
		if err != nil {
			result.err = err
			return result
		}
		text, err = c.Markdown.Convert(extracted.ContentHTML)
		if err != nil {
			result.err = err
			return result
		}
		title = extracted.Title
	}

	doc, err := c.Parser.Parse(text, docparse.ParseOptions{
		SourceType: sourceType,
		Language:   c.Language,
	})
	if err != nil {
		result.err = err
		return result
	}
	doc.Metadata.SourceFile = path

	if title == "" {
		title = doc.Metadata.Title
	}

	result.conv = &docparse.Conversion{
		ID:          uuid.New().String(),
		SourcePath:  path,
		SourceType:  sourceType,
		Title:       title,
		Result:      doc,
		ContentHash: ComputeHash(content),
	}

	return result
}

// save writes a conversion through every configured writer.
func (c *Converter) save(ctx context.Context, conv *docparse.Conversion) error {
	for _, w := range c.Writers {
		if err := w.CreateConversion(ctx, conv); err != nil {
			return err
		}
	}
	return nil
}

// SourceTypeForPath maps a file extension to its source type tag.
func SourceTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return "html"
	default:
		return "text"
	}
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
