package docparse

import "encoding/json"

// BlockType classifies a span of document text by its role.
type BlockType string

// Content block types produced by classification.
const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockCode      BlockType = "code_block"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockTable     BlockType = "table"
	BlockMetadata  BlockType = "metadata"
	BlockFigure    BlockType = "figure"
	BlockEquation  BlockType = "equation"
)

// StructuralContext records the nearest enclosing chapter, section, and
// subsection heading text at a block's position in the document.
type StructuralContext struct {
	Chapter    string `json:"chapter,omitempty"`
	Section    string `json:"section,omitempty"`
	Subsection string `json:"subsection,omitempty"`
}

// Metadata carries per-block annotations added during classification
// and normalization. Recognized keys are typed fields; Extra holds
// forward-compatible additions and is merged into the same JSON object.
// Normalization only ever sets or overwrites individual fields, it
// never replaces the whole value.
type Metadata struct {
	Language           string             `json:"language,omitempty"`
	LanguageConfidence string             `json:"language_confidence,omitempty"`
	URLs               []string           `json:"urls,omitempty"`
	SectionType        string             `json:"section_type,omitempty"`
	SectionNumber      string             `json:"section_number,omitempty"`
	ListType           string             `json:"list_type,omitempty"`
	ConvertedFrom      string             `json:"converted_from,omitempty"`
	SourceType         string             `json:"source_type,omitempty"`
	SourceContext      string             `json:"source_context,omitempty"`
	Normalized         bool               `json:"normalized,omitempty"`
	CaseNormalized     bool               `json:"case_normalized,omitempty"`
	HadDuplicate       bool               `json:"had_duplicate,omitempty"`
	SemanticList       bool               `json:"semantic_list,omitempty"`
	ItemCount          int                `json:"item_count,omitempty"`
	StructuralContext  *StructuralContext `json:"structural_context,omitempty"`

	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the object produced by the typed
// fields. Typed fields win on key collision.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type alias Metadata
	b, err := json.Marshal(alias(m))
	if err != nil {
		return nil, err
	}
	if len(m.Extra) == 0 {
		return b, nil
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	for k, v := range m.Extra {
		if _, ok := obj[k]; !ok {
			obj[k] = v
		}
	}
	return json.Marshal(obj)
}

// Block is one typed span of document content.
type Block struct {
	Type     BlockType `json:"type"`
	Content  string    `json:"content"`
	Level    int       `json:"level"`
	Metadata Metadata  `json:"metadata"`
}
