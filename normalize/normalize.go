// Package normalize implements the three-phase content normalization
// pipeline: per-block cleanup, structural context propagation with
// short-paragraph merging, and content deduplication.
package normalize

import (
	"strings"

	"github.com/fwojciec/docparse"
)

// Normalizer rewrites a classified block sequence into its final,
// cleaned form. A Normalizer is stateless; per-document state such as
// the URL dedup cache is scoped to a single Normalize call and never
// leaks across documents.
type Normalizer struct{}

// New returns a new Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// docState carries mutable state for one Normalize call.
type docState struct {
	seenURLs map[string]struct{}
}

// Normalize runs the three normalization phases over blocks and
// returns the final sequence. Blocks may be dropped, retyped, or
// merged; the relative order of surviving blocks is preserved.
func (n *Normalizer) Normalize(blocks []*docparse.Block) []*docparse.Block {
	state := &docState{seenURLs: make(map[string]struct{})}

	cleaned := make([]*docparse.Block, 0, len(blocks))
	for _, block := range blocks {
		normalized := normalizeBlock(block, state)
		if normalized != nil {
			cleaned = append(cleaned, normalized)
		}
	}

	return deduplicate(improveStructure(cleaned))
}

// normalizeBlock applies per-type phase 1 normalization to a single
// block. A nil return drops the block.
func normalizeBlock(block *docparse.Block, state *docState) *docparse.Block {
	if strings.TrimSpace(block.Content) == "" {
		return nil
	}

	switch block.Type {
	case docparse.BlockHeading:
		return normalizeHeading(block)
	case docparse.BlockCode:
		return normalizeCode(block)
	case docparse.BlockList:
		return normalizeList(block)
	case docparse.BlockParagraph:
		return normalizeParagraph(block, state)
	default:
		return block
	}
}
