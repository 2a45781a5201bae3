package docparse

import (
	"context"
	"time"
)

// Version is reported in every parse result.
const Version = "1.0.0"

// DocumentType identifies the JSON shape produced by the parser.
const DocumentType = "structured_text"

// DocumentMetadata aggregates document-level statistics.
type DocumentMetadata struct {
	Title         string         `json:"title,omitempty"`
	WordCount     int            `json:"word_count"`
	BlockCount    int            `json:"block_count"`
	ProcessedDate time.Time      `json:"processed_date"`
	ContentTypes  map[string]int `json:"content_types"`
	Language      string         `json:"language,omitempty"`
	SourceFile    string         `json:"source_file,omitempty"`
}

// Document is the AI-consumable result of parsing one text document.
type Document struct {
	DocumentType         string           `json:"document_type"`
	Metadata             DocumentMetadata `json:"metadata"`
	ContentBlocks        []*Block         `json:"content_blocks"`
	Summary              string           `json:"summary"`
	KeyTopics            []string         `json:"key_topics"`
	Version              string           `json:"version"`
	NormalizationApplied bool             `json:"normalization_applied"`
}

// ParseOptions configures a single parse call.
type ParseOptions struct {
	// SourceType tags produced blocks with the originating format
	// (e.g. "text", "html") for provenance.
	SourceType string

	// Language selects the stop-word set for topic extraction.
	// "auto" detects the language from a sample of the content.
	Language string
}

// Parser turns plain text into a structured Document. Parsing is pure
// CPU work with no suspension points; malformed input degrades to the
// most generic classification rather than failing.
type Parser interface {
	Parse(text string, opts ParseOptions) (*Document, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML sources, removing
// boilerplate, so the result can be fed to the parsing pipeline.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// MarkdownConverter converts HTML to Markdown.
type MarkdownConverter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// Conversion is one persisted parse result.
type Conversion struct {
	ID          string    `json:"id"`
	SourcePath  string    `json:"sourcePath"`
	SourceType  string    `json:"sourceType"`
	Title       string    `json:"title"`
	Result      *Document `json:"result"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.SourcePath == "" {
		return Errorf(EINVALID, "conversion source path required")
	}
	if c.Result == nil {
		return Errorf(EINVALID, "conversion result required")
	}
	return nil
}

// ConversionWriter writes conversions to storage.
type ConversionWriter interface {
	CreateConversion(ctx context.Context, conv *Conversion) error
}

// ConversionService represents a service for managing stored
// conversions.
type ConversionService interface {
	// CreateConversion persists a new conversion.
	CreateConversion(ctx context.Context, conv *Conversion) error

	// FindConversionByID retrieves a conversion by ID.
	// Returns ENOTFOUND if the conversion does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)

	// DeleteConversion permanently removes a conversion.
	// Returns ENOTFOUND if the conversion does not exist.
	DeleteConversion(ctx context.Context, id string) error
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	ID         *string `json:"id"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
