package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/batch"
	"github.com/fwojciec/docparse/mock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func passthroughParser() *mock.Parser {
	return &mock.Parser{
		ParseFn: func(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
			return &docparse.Document{
				DocumentType: docparse.DocumentType,
				Metadata:     docparse.DocumentMetadata{Title: "Parsed"},
				ContentBlocks: []*docparse.Block{
					{Type: docparse.BlockParagraph, Content: text},
				},
			}, nil
		},
	}
}

func TestConverter_ConvertFiles(t *testing.T) {
	t.Parallel()

	t.Run("converts text files and saves results", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "first document")
		b := writeFile(t, dir, "b.md", "second document")

		var mu sync.Mutex
		var saved []*docparse.Conversion
		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				mu.Lock()
				defer mu.Unlock()
				saved = append(saved, conv)
				return nil
			},
		}

		c := &batch.Converter{
			Parser:  passthroughParser(),
			Writers: []docparse.ConversionWriter{writer},
		}

		result, err := c.ConvertFiles(context.Background(), []string{a, b}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, len("first document")+len("second document"), result.Bytes)

		require.Len(t, saved, 2)
		// Results are saved in input order.
		assert.Equal(t, a, saved[0].SourcePath)
		assert.Equal(t, b, saved[1].SourcePath)
		assert.Equal(t, "text", saved[0].SourceType)
		assert.Equal(t, "Parsed", saved[0].Title)
		assert.NotEmpty(t, saved[0].ID)
		assert.NotEmpty(t, saved[0].ContentHash)
		assert.Equal(t, a, saved[0].Result.Metadata.SourceFile)
	})

	t.Run("skips duplicate paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "content")

		var mu sync.Mutex
		var savedCount int
		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				mu.Lock()
				defer mu.Unlock()
				savedCount++
				return nil
			},
		}

		c := &batch.Converter{
			Parser:  passthroughParser(),
			Writers: []docparse.ConversionWriter{writer},
		}

		var skippedPaths []string
		result, err := c.ConvertFiles(context.Background(), []string{a, a, a}, func(event batch.ProgressEvent) {
			if event.Type == batch.ProgressSkipped {
				skippedPaths = append(skippedPaths, event.Path)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 2, result.Skipped)
		assert.Equal(t, 1, savedCount)
		assert.Equal(t, []string{a, a}, skippedPaths)
	})

	t.Run("skips files with identical content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "same content")
		b := writeFile(t, dir, "b.txt", "same content")

		var mu sync.Mutex
		var saved []*docparse.Conversion
		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				mu.Lock()
				defer mu.Unlock()
				saved = append(saved, conv)
				return nil
			},
		}

		c := &batch.Converter{
			Parser:  passthroughParser(),
			Writers: []docparse.ConversionWriter{writer},
		}

		result, err := c.ConvertFiles(context.Background(), []string{a, b}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, saved, 1)
		assert.Equal(t, a, saved[0].SourcePath)
	})

	t.Run("isolates per-file failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "good document")
		missing := filepath.Join(dir, "missing.txt")

		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				return nil
			},
		}

		c := &batch.Converter{
			Parser:  passthroughParser(),
			Writers: []docparse.ConversionWriter{writer},
		}

		var failedPaths []string
		result, err := c.ConvertFiles(context.Background(), []string{a, missing}, func(event batch.ProgressEvent) {
			if event.Type == batch.ProgressFailed {
				failedPaths = append(failedPaths, event.Path)
			}
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, []string{missing}, failedPaths)
	})

	t.Run("converts html through extractor and markdown converter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writeFile(t, dir, "page.html", "<html><head><title>Guide</title></head><body><p>Hello</p></body></html>")

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*docparse.ExtractResult, error) {
				return &docparse.ExtractResult{
					Title:       "Guide",
					ContentHTML: "<p>Hello</p>",
				}, nil
			},
		}
		markdown := &mock.MarkdownConverter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>Hello</p>", html)
				return "Hello", nil
			},
		}

		var parsedText string
		parser := &mock.Parser{
			ParseFn: func(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
				parsedText = text
				assert.Equal(t, "html", opts.SourceType)
				return &docparse.Document{ContentBlocks: []*docparse.Block{}}, nil
			},
		}

		var saved *docparse.Conversion
		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				saved = conv
				return nil
			},
		}

		c := &batch.Converter{
			Parser:    parser,
			Extractor: extractor,
			Markdown:  markdown,
			Writers:   []docparse.ConversionWriter{writer},
		}

		result, err := c.ConvertFiles(context.Background(), []string{page}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, "Hello", parsedText)
		require.NotNil(t, saved)
		assert.Equal(t, "html", saved.SourceType)
		// Extractor title wins over the parsed document title.
		assert.Equal(t, "Guide", saved.Title)
	})

	t.Run("reports progress events in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		paths := []string{
			writeFile(t, dir, "a.txt", "one"),
			writeFile(t, dir, "b.txt", "two"),
			writeFile(t, dir, "c.txt", "three"),
		}

		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				return nil
			},
		}

		c := &batch.Converter{
			Parser:      passthroughParser(),
			Writers:     []docparse.ConversionWriter{writer},
			Concurrency: 1,
		}

		var events []batch.ProgressEvent
		_, err := c.ConvertFiles(context.Background(), paths, func(event batch.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.Equal(t, batch.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)
		for i := 1; i <= 3; i++ {
			assert.Equal(t, batch.ProgressCompleted, events[i].Type)
			assert.Equal(t, i, events[i].Completed)
		}
		assert.Equal(t, batch.ProgressFinished, events[4].Type)
	})

	t.Run("writer error counts as failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "content")

		writer := &mock.ConversionWriter{
			CreateConversionFn: func(ctx context.Context, conv *docparse.Conversion) error {
				return errors.New("disk full")
			},
		}

		c := &batch.Converter{
			Parser:  passthroughParser(),
			Writers: []docparse.ConversionWriter{writer},
		}

		result, err := c.ConvertFiles(context.Background(), []string{a}, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("returns immediately for empty input", func(t *testing.T) {
		t.Parallel()

		c := &batch.Converter{Parser: passthroughParser()}
		result, err := c.ConvertFiles(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, &batch.Result{}, result)
	})
}

func TestSourceTypeForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"docs/guide.txt", "text"},
		{"docs/readme.md", "text"},
		{"docs/page.html", "html"},
		{"docs/page.HTM", "html"},
		{"docs/noext", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, batch.SourceTypeForPath(tt.path))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", batch.FormatBytes(512))
	assert.Equal(t, "1.5 KB", batch.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", batch.FormatBytes(2*1024*1024))
}
