package docparse

import (
	"regexp"
	"strings"
)

var sectionBreakRe = regexp.MustCompile(`\n{2,}`)

// SplitSections segments normalized text into candidate sections on
// runs of two or more consecutive newlines. Each returned section is
// trimmed and non-empty; section order follows source order.
func SplitSections(text string) []string {
	if text == "" {
		return nil
	}

	parts := sectionBreakRe.Split(text, -1)
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sections = append(sections, part)
	}

	if len(sections) == 0 {
		return nil
	}
	return sections
}
