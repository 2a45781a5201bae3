package parse

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docparse"
)

const noSummary = "No summary available"

// generateSummary builds a pipe-joined synopsis from the heading
// count, the leading key topics, and the first substantial paragraph.
func generateSummary(blocks []*docparse.Block, topics []string) string {
	var parts []string

	headings := 0
	for _, block := range blocks {
		if block.Type == docparse.BlockHeading {
			headings++
			if headings == 5 {
				break
			}
		}
	}
	if headings > 0 {
		parts = append(parts, fmt.Sprintf("Document contains %d main sections", headings))
	}

	if len(topics) > 0 {
		n := len(topics)
		if n > 5 {
			n = 5
		}
		parts = append(parts, "Key topics: "+strings.Join(topics[:n], ", "))
	}

	for _, block := range blocks {
		if block.Type == docparse.BlockParagraph && len(block.Content) > 50 {
			parts = append(parts, "Beginning: "+truncate(block.Content, 300))
			break
		}
	}

	if len(parts) == 0 {
		return noSummary
	}
	return strings.Join(parts, " | ")
}

// truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
