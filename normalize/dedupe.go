package normalize

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/docparse"
)

var collapseWSRe = regexp.MustCompile(`\s+`)

// deduplicate is phase 3: it drops repeated blocks in document order.
// Headings are fingerprinted on whitespace-collapsed, case-folded
// content so that cosmetic variants of the same heading collapse to
// one; other blocks are fingerprinted on exact trimmed content.
func deduplicate(blocks []*docparse.Block) []*docparse.Block {
	seen := make(map[uint64]struct{}, len(blocks))
	unique := make([]*docparse.Block, 0, len(blocks))

	for _, block := range blocks {
		var fingerprint uint64
		if block.Type == docparse.BlockHeading {
			collapsed := collapseWSRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(block.Content)), " ")
			fingerprint = xxhash.Sum64String("heading\x00" + collapsed)
		} else {
			fingerprint = xxhash.Sum64String(strings.TrimSpace(block.Content))
		}

		if _, ok := seen[fingerprint]; ok {
			continue
		}
		seen[fingerprint] = struct{}{}
		unique = append(unique, block)
	}

	return unique
}
