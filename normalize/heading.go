package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fwojciec/docparse"
)

// placeholderRes match headings that carry no content and should be
// dropped outright.
var placeholderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^[\-_=]{3,}.*yard.*line.*[\-_=]{3,}$`),
	regexp.MustCompile(`(?i)^[\[\(]?\s*(placeholder|todo|tbd|xxx|fixme|coming\s+soon)\s*[\]\)]?$`),
	regexp.MustCompile(`^[\-_=]{10,}$`),
	regexp.MustCompile(`^\.{10,}$`),
	regexp.MustCompile(`^\s*\.\s*\.\s*\.\s*$`),
}

// headingRule rewrites one family of numbered headings. Rules are
// evaluated in order; the first match wins.
type headingRule struct {
	re *regexp.Regexp
}

var headingRules = []headingRule{
	{regexp.MustCompile(`(?i)^(Chapter|Ch\.?)\s*(\d+|[IVXLCDM]+)[\s:\-]*(.*)$`)},
	{regexp.MustCompile(`(?i)^(Section|Sec\.?)\s*(\d+(?:\.\d+)*)[\s:\-]*(.*)$`)},
	{regexp.MustCompile(`(?i)^(Part)\s*(\d+|[IVXLCDM]+)[\s:\-]*(.*)$`)},
	{regexp.MustCompile(`(?i)^(Lab|Step)\s*(\d+)[\s:\-]*(.*)$`)},
	{regexp.MustCompile(`(?i)^(Exercise|Ex\.?)\s*(\d+)[\s:\-]*(.*)$`)},
}

var titleCaser = cases.Title(language.English)

// normalizeHeading drops placeholder headings, rewrites recognized
// chapter/section numbering to a canonical "Prefix N: Title" form,
// collapses self-duplicated heading text, and title-cases shouty
// headings.
func normalizeHeading(block *docparse.Block) *docparse.Block {
	content := strings.TrimSpace(block.Content)

	for _, re := range placeholderRes {
		if re.MatchString(content) {
			return nil
		}
	}

	for _, rule := range headingRules {
		m := rule.re.FindStringSubmatch(content)
		if m == nil {
			continue
		}

		prefix := titleCaser.String(m[1])
		number := m[2]
		title := strings.TrimSpace(m[3])

		if title != "" {
			block.Content = prefix + " " + number + ": " + title
		} else {
			block.Content = prefix + " " + number
		}
		block.Metadata.SectionType = strings.ToLower(prefix)
		block.Metadata.SectionNumber = number
		block.Metadata.Normalized = true
		break
	}

	// A heading whose text is the same phrase twice collapses to one
	// copy. The check runs against the pre-rewrite content and wins
	// over the numbering rewrite when both apply.
	if collapsed, ok := collapseDuplicate(content); ok {
		block.Content = collapsed
		block.Metadata.HadDuplicate = true
	}

	if isUpper(block.Content) && len(block.Content) > 10 {
		block.Content = titleCaser.String(block.Content)
		block.Metadata.CaseNormalized = true
	}

	return block
}

// collapseDuplicate reports whether content is one phrase immediately
// repeated ("X X") and returns the single copy. The shortest repeated
// prefix wins, matched case-insensitively.
func collapseDuplicate(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	for i := 1; i <= len(trimmed)/2; i++ {
		prefix := trimmed[:i]
		rest := strings.TrimLeft(trimmed[i:], " \t\n")
		if strings.EqualFold(rest, prefix) {
			return strings.TrimSpace(prefix), true
		}
	}
	return content, false
}

// isUpper reports whether s contains at least one cased character and
// every cased character is upper-case.
func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}
