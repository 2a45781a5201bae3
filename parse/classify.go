package parse

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docparse"
)

// Heading detection patterns, probed in order on single-line sections.
var (
	hashHeadingRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	chapterHeadingRe  = regexp.MustCompile(`(?i)^(Chapter|Section|Part|Ch\.?|Sec\.?)\s*(\d+|[IVXLCDM]+)[\s:\-]*(.*)$`)
	numberedHeadingRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s+(.+)$`)
)

// Line-level patterns for the majority-vote block rules.
var (
	bulletItemRe     = regexp.MustCompile(`^\s*[-\*\+•◦◘○●]\s+.+$`)
	numberedItemRe   = regexp.MustCompile(`^\s*(\d+|[a-z]|[A-Z]|[ivxlcdm]+|[IVXLCDM]+)[.)\]]\s+.+$`)
	tableRowRe       = regexp.MustCompile(`^\|.+\|$`)
	tableSeparatorRe = regexp.MustCompile(`^[\|\+][-\+\|]+[\|\+]$`)
	urlRe            = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
)

// promptPrefixes mark shell or REPL transcript lines.
var promptPrefixes = []string{"$ ", "# ", ">>> ", "PS>", "C:\\", "~/", "λ "}

// codeKeywords are statement openers common across mainstream
// programming languages.
var codeKeywords = []string{
	"def ", "function ", "class ", "import ", "from ", "SELECT ", "FROM ", "WHERE ", "var ",
	"const ", "let ", "public ", "private ", "static ", "void ", "int ", "string ", "bool ",
	"package ", "@Override", "#include", "#define", "module ", "namespace ",
}

// ClassifySection assigns one section a content type using ordered
// first-match rules: heading, code block, list, quote, table, and
// paragraph as the fallback. The sourceType tag, when present, is
// recorded on the produced block for provenance.
func ClassifySection(section, sourceType string) *docparse.Block {
	block := classifySection(strings.TrimSpace(section))
	if sourceType != "" {
		block.Metadata.SourceType = sourceType
	}
	return block
}

func classifySection(section string) *docparse.Block {
	if block := classifyHeading(section); block != nil {
		return block
	}

	lines := strings.Split(section, "\n")

	if isCodeBlock(section, lines) {
		return &docparse.Block{Type: docparse.BlockCode, Content: section}
	}
	if majority(lines, isListItem) {
		return &docparse.Block{Type: docparse.BlockList, Content: section}
	}
	if majority(lines, isQuoteLine) {
		return &docparse.Block{Type: docparse.BlockQuote, Content: section}
	}
	if majority(lines, isTableLine) {
		return &docparse.Block{Type: docparse.BlockTable, Content: section}
	}

	block := &docparse.Block{Type: docparse.BlockParagraph, Content: section}
	if urls := urlRe.FindAllString(section, -1); len(urls) > 0 {
		block.Metadata.URLs = urls
	}
	return block
}

// classifyHeading returns a heading block when the section is a single
// line matching one of the heading forms, or nil.
func classifyHeading(section string) *docparse.Block {
	if strings.Contains(section, "\n") {
		return nil
	}

	if m := hashHeadingRe.FindStringSubmatch(section); m != nil {
		return &docparse.Block{
			Type:    docparse.BlockHeading,
			Content: strings.TrimSpace(m[2]),
			Level:   len(m[1]),
		}
	}
	if chapterHeadingRe.MatchString(section) {
		return &docparse.Block{Type: docparse.BlockHeading, Content: section, Level: 1}
	}
	if m := numberedHeadingRe.FindStringSubmatch(section); m != nil {
		level := strings.Count(m[1], ".") + 1
		if level > 6 {
			level = 6
		}
		return &docparse.Block{Type: docparse.BlockHeading, Content: section, Level: level}
	}
	if isUpper(section) && len(section) < 100 {
		return &docparse.Block{Type: docparse.BlockHeading, Content: section, Level: 2}
	}
	if len(section) < 80 && !strings.HasSuffix(section, ".") && !strings.HasSuffix(section, "?") &&
		!strings.HasSuffix(section, "!") && !strings.HasSuffix(section, ":") {
		return &docparse.Block{Type: docparse.BlockHeading, Content: section, Level: 2}
	}

	return nil
}

func isCodeBlock(section string, lines []string) bool {
	if len(lines) > 1 && strings.HasPrefix(lines[0], "```") && strings.HasPrefix(lines[len(lines)-1], "```") {
		return true
	}
	if majority(lines, isIndented) {
		return true
	}
	if majority(lines, hasPromptPrefix) {
		return true
	}
	return majority(lines, startsWithCodeKeyword)
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func hasPromptPrefix(line string) bool {
	for _, prefix := range promptPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func startsWithCodeKeyword(line string) bool {
	line = strings.TrimLeft(line, " \t")
	for _, keyword := range codeKeywords {
		if strings.HasPrefix(line, keyword) {
			return true
		}
	}
	return false
}

func isListItem(line string) bool {
	return bulletItemRe.MatchString(line) || numberedItemRe.MatchString(line)
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isTableLine(line string) bool {
	return tableRowRe.MatchString(line) || tableSeparatorRe.MatchString(line)
}

// majority reports whether at least half of the lines satisfy pred.
func majority(lines []string, pred func(string) bool) bool {
	if len(lines) == 0 {
		return false
	}
	matches := 0
	for _, line := range lines {
		if pred(line) {
			matches++
		}
	}
	return float64(matches) >= float64(len(lines))*0.5
}

// isUpper reports whether s contains at least one cased character and
// every cased character is upper-case.
func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}
