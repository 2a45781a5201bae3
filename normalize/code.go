package normalize

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docparse"
)

// languageSignature ties a language name to a detection pattern.
// Signatures are probed in order; the first match wins.
type languageSignature struct {
	name string
	re   *regexp.Regexp
}

var languageSignatures = []languageSignature{
	{"bash", regexp.MustCompile(`(?i)#!/bin/bash|#!/bin/sh|\$\s+|sudo\s+|chmod\s+|grep\s+|awk\s+|sed\s+|ls\s+|cd\s+|mkdir\s+`)},
	{"powershell", regexp.MustCompile(`(?i)PS\s*>|Get-|Set-|New-|Remove-|\$\w+\s*=|Import-Module|cmdlet`)},
	{"python", regexp.MustCompile(`(?i)#!/usr/bin/python|import\s+\w+|from\s+\w+\s+import|def\s+\w+|class\s+\w+|print\(`)},
	{"javascript", regexp.MustCompile(`(?i)function\s+\w+|var\s+\w+|let\s+\w+|const\s+\w+|console\.log|require\(`)},
	{"sql", regexp.MustCompile(`(?i)SELECT\s+|FROM\s+|WHERE\s+|INSERT\s+INTO|UPDATE\s+|DELETE\s+FROM|CREATE\s+TABLE`)},
	{"yaml", regexp.MustCompile(`(?m)^[\s]*[\w\-]+:\s*$|^[\s]*-\s+[\w\-]+:|version:\s*[\d\.]+`)},
	{"json", regexp.MustCompile(`(?m)^\s*[\{\[]|"[\w\-]+"\s*:\s*|^\s*[\}\]]`)},
	{"dockerfile", regexp.MustCompile(`(?i)FROM\s+|RUN\s+|COPY\s+|ADD\s+|WORKDIR\s+|EXPOSE\s+`)},
	{"xml", regexp.MustCompile(`(?i)<\?xml|<[\w\-]+[^>]*>|</[\w\-]+>`)},
	{"css", regexp.MustCompile(`(?i)[\w\-]+\s*\{|[\w\-]+:\s*[\w\-#]+;|\.[a-zA-Z][\w\-]*\s*\{`)},
}

var (
	promptDollarRe   = regexp.MustCompile(`^[\$#]\s*`)
	promptPSRe       = regexp.MustCompile(`^PS\s*>\s*`)
	promptUserHostRe = regexp.MustCompile(`^\w+@\w+:\w*\$\s*`)
	jsonOpenRe       = regexp.MustCompile(`(?m)^\s*[\{\[]`)
)

// normalizeCode retypes very short code blocks to headings, tags the
// remaining blocks with a detected programming language, and strips
// shell-prompt artifacts from command-line content.
func normalizeCode(block *docparse.Block) *docparse.Block {
	content := strings.TrimSpace(block.Content)

	// Very short blocks with no code punctuation are almost always
	// misclassified titles.
	if len(content) < 10 && !strings.ContainsAny(content, "{}();=") {
		level := block.Level
		if level == 0 {
			level = 3
		}
		meta := block.Metadata
		meta.ConvertedFrom = "code_block"
		return &docparse.Block{
			Type:     docparse.BlockHeading,
			Content:  content,
			Level:    level,
			Metadata: meta,
		}
	}

	lang := DetectLanguage(content)
	block.Metadata.Language = lang
	block.Metadata.LanguageConfidence = "detected"

	if block.Metadata.SourceType != "" {
		block.Metadata.SourceContext = block.Metadata.SourceType
	}

	if lang == "bash" || lang == "powershell" {
		block.Content = stripPromptArtifacts(content)
	}

	return block
}

// DetectLanguage guesses the programming language of a code snippet.
// It checks a shebang line first, then the ordered signature set, then
// a last-resort sql/xml/json sniff, and falls back to "text".
func DetectLanguage(code string) string {
	if strings.HasPrefix(code, "#!/") {
		head := code
		if len(head) > 50 {
			head = head[:50]
		}
		if strings.Contains(head, "python") {
			return "python"
		}
		if strings.Contains(head, "bash") || strings.Contains(head, "sh") {
			return "bash"
		}
	}

	for _, sig := range languageSignatures {
		if sig.re.MatchString(code) {
			return sig.name
		}
	}

	lower := strings.ToLower(code)
	if strings.Contains(lower, "select ") || strings.Contains(lower, "from ") || strings.Contains(lower, "where ") {
		return "sql"
	}
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<html") || strings.HasPrefix(trimmed, "<!") {
		return "xml"
	}
	if jsonOpenRe.MatchString(code) && strings.Contains(code, `"`) {
		return "json"
	}

	return "text"
}

// stripPromptArtifacts removes shell prompt prefixes from every line
// while preserving the commands themselves.
func stripPromptArtifacts(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = promptDollarRe.ReplaceAllString(line, "")
		line = promptPSRe.ReplaceAllString(line, "")
		line = promptUserHostRe.ReplaceAllString(line, "")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
