package normalize

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docparse"
)

var (
	bulletMarkerRe = regexp.MustCompile(`^[\-\*\+•]\s*`)
	numberMarkerRe = regexp.MustCompile(`^\d+[\.\)]\s*`)
)

// checklistRes match lines that already read as inventory or
// checklist entries.
var checklistRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[\-\*\+•]\s*\w+`),
	regexp.MustCompile(`^\s*\d+[\.\)]\s*\w+`),
	regexp.MustCompile(`^\s*[A-Z][a-z]+:\s*`),
	regexp.MustCompile(`^\s*\w+\s*-\s*\w+`),
}

// normalizeList flags semantic lists (tool inventories, step-by-step
// procedures, checklists) and strips redundant bullet or number
// markers from their items.
func normalizeList(block *docparse.Block) *docparse.Block {
	content := strings.TrimSpace(block.Content)
	lines := strings.Split(content, "\n")

	if !isSemanticList(lines) {
		return block
	}
	block.Metadata.SemanticList = true

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletMarkerRe.ReplaceAllString(line, "")
		line = numberMarkerRe.ReplaceAllString(line, "")
		items = append(items, line)
	}

	block.Content = strings.Join(items, "\n")
	block.Metadata.Normalized = true
	return block
}

// isSemanticList reports whether the lines describe an enumerable
// collection: they mention a tool or step indicator word, or most of
// them individually look like checklist entries.
func isSemanticList(lines []string) bool {
	if len(lines) < 2 {
		return false
	}

	joined := strings.ToLower(strings.Join(lines, "\n"))
	for _, indicator := range []string{"tool", "software", "application", "utility", "command", "package"} {
		if strings.Contains(joined, indicator) {
			return true
		}
	}
	for _, indicator := range []string{"step", "phase", "stage", "procedure", "process"} {
		if strings.Contains(joined, indicator) {
			return true
		}
	}

	matches := 0
	for _, line := range lines {
		for _, re := range checklistRes {
			if re.MatchString(line) {
				matches++
				break
			}
		}
	}
	return float64(matches) >= float64(len(lines))*0.6
}
