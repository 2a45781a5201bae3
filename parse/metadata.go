package parse

import (
	"strings"
	"time"

	"github.com/fwojciec/docparse"
)

// extractMetadata aggregates document-level statistics in one pass
// over the final block sequence. The title is the content of the first
// level-1 heading, when one exists.
func extractMetadata(blocks []*docparse.Block) docparse.DocumentMetadata {
	metadata := docparse.DocumentMetadata{
		BlockCount:    len(blocks),
		ProcessedDate: time.Now().UTC(),
		ContentTypes:  make(map[string]int),
	}

	for _, block := range blocks {
		metadata.WordCount += len(strings.Fields(block.Content))
		metadata.ContentTypes[string(block.Type)]++
		if metadata.Title == "" && block.Type == docparse.BlockHeading && block.Level == 1 {
			metadata.Title = block.Content
		}
	}

	return metadata
}
