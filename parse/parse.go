// Package parse implements the text-to-document parsing pipeline:
// section segmentation, heuristic block classification, content
// normalization, and document-level metadata, topic, and summary
// extraction.
package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/normalize"
)

// Ensure type implements interface.
var _ docparse.Parser = (*Parser)(nil)

// Parser converts plain text into a structured Document.
type Parser struct {
	// Language selects the stop-word set for topic extraction and is
	// recorded in document metadata. "auto" (the default) detects the
	// language from a sample of the content. Per-call options take
	// precedence.
	Language string
}

// New returns a Parser with automatic language detection.
func New() *Parser {
	return &Parser{Language: "auto"}
}

// Parse runs the full pipeline over text and returns the document
// result. Parsing never fails on malformed content; heuristics degrade
// to paragraph classification. The only rejected input is an empty or
// whitespace-only string.
func (p *Parser) Parse(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, docparse.Errorf(docparse.EINVALID, "document text required")
	}

	lang := opts.Language
	if lang == "" {
		lang = p.Language
	}
	if lang == "" || lang == "auto" {
		lang = detectDocumentLanguage(text)
	}

	sections := docparse.SplitSections(docparse.NormalizeText(text))
	blocks := make([]*docparse.Block, 0, len(sections))
	for _, section := range sections {
		blocks = append(blocks, ClassifySection(section, opts.SourceType))
	}

	blocks = normalize.New().Normalize(blocks)

	metadata := extractMetadata(blocks)
	metadata.Language = lang
	topics := extractTopics(blocks, lang)

	return &docparse.Document{
		DocumentType:         docparse.DocumentType,
		Metadata:             metadata,
		ContentBlocks:        blocks,
		Summary:              generateSummary(blocks, topics),
		KeyTopics:            topics,
		Version:              docparse.Version,
		NormalizationApplied: true,
	}, nil
}

// iso1 maps the detector's ISO 639-3 codes to the two-letter codes
// reported in document metadata, for the languages we expect to see.
var iso1 = map[string]string{
	"eng": "en",
	"spa": "es",
	"fra": "fr",
	"deu": "de",
	"ita": "it",
	"por": "pt",
	"nld": "nl",
	"pol": "pl",
	"rus": "ru",
	"jpn": "ja",
	"cmn": "zh",
}

// detectDocumentLanguage samples up to 5000 bytes of text and runs
// trigram-based language detection over it.
func detectDocumentLanguage(text string) string {
	sample := text
	if len(sample) > 5000 {
		cut := 5000
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	info := whatlanggo.Detect(sample)
	code := whatlanggo.LangToString(info.Lang)
	if short, ok := iso1[code]; ok {
		return short
	}
	return code
}
