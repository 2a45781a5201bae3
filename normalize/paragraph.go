package normalize

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docparse"
)

var (
	trailingPunctRe = regexp.MustCompile(`[.,;:!?\]\)]+$`)
	doubleProtoRe   = regexp.MustCompile(`^https?://https?://`)
	sentenceEndRe   = regexp.MustCompile(`[.!?]+`)
	ordinalPrefixRe = regexp.MustCompile(`(?i)^(first|second|third|next|then|finally)[\s,]*`)
)

// normalizeParagraph re-cleans captured URLs, drops URLs already seen
// earlier in the document, and converts enumeration-style prose into a
// list block.
func normalizeParagraph(block *docparse.Block, state *docState) *docparse.Block {
	content := strings.TrimSpace(block.Content)

	if len(block.Metadata.URLs) > 0 {
		cleaned := make([]string, 0, len(block.Metadata.URLs))
		for _, url := range block.Metadata.URLs {
			clean := CleanURL(url)
			if clean == "" {
				continue
			}
			if _, seen := state.seenURLs[clean]; seen {
				continue
			}
			state.seenURLs[clean] = struct{}{}
			cleaned = append(cleaned, clean)
		}
		block.Metadata.URLs = cleaned
	}

	if shouldConvertToList(content) {
		items := extractListItems(content)
		if len(items) > 0 {
			meta := block.Metadata
			meta.ConvertedFrom = "paragraph"
			meta.ListType = "semantic"
			meta.ItemCount = len(items)
			return &docparse.Block{
				Type:     docparse.BlockList,
				Content:  strings.Join(items, "\n"),
				Level:    block.Level,
				Metadata: meta,
			}
		}
	}

	block.Content = content
	return block
}

// CleanURL normalizes a captured URL: trailing punctuation is
// stripped, doubled protocol prefixes collapse to one, and bare
// www/host forms gain an https scheme.
func CleanURL(url string) string {
	if url == "" {
		return ""
	}

	url = trailingPunctRe.ReplaceAllString(strings.TrimSpace(url), "")
	url = doubleProtoRe.ReplaceAllString(url, "https://")

	if strings.HasPrefix(url, "www.") {
		return "https://" + url
	}
	if !hasScheme(url) && strings.Contains(url, ".") && !strings.HasPrefix(url, "/") {
		return "https://" + url
	}
	return url
}

func hasScheme(url string) bool {
	for _, scheme := range []string{"http://", "https://", "ftp://", "mailto:"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

// shouldConvertToList reports whether paragraph prose reads as an
// enumeration: at least three sentence candidates, half of which start
// with a sequence word, a list marker, or a single label:value pair.
func shouldConvertToList(content string) bool {
	sentences := sentenceEndRe.Split(content, -1)
	if len(sentences) < 3 {
		return false
	}

	indicators, total := 0, 0
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		total++
		if isListSentence(sentence) {
			indicators++
		}
	}

	return total > 0 && float64(indicators) >= float64(total)*0.5
}

func isListSentence(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, word := range []string{"first", "second", "third", "next", "then", "finally"} {
		if strings.HasPrefix(lower, word) {
			return true
		}
	}
	if numberMarkerRe.MatchString(sentence) {
		return true
	}
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(sentence, marker) {
			return true
		}
	}
	return strings.Contains(sentence, ": ") && strings.Count(sentence, ":") == 1
}

// extractListItems splits enumeration prose into cleaned list items,
// dropping sequence words and residual markers.
func extractListItems(content string) []string {
	var items []string
	for _, sentence := range sentenceEndRe.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 5 {
			continue
		}
		sentence = ordinalPrefixRe.ReplaceAllString(sentence, "")
		sentence = numberMarkerRe.ReplaceAllString(sentence, "")
		sentence = bulletMarkerRe.ReplaceAllString(sentence, "")
		sentence = strings.TrimSpace(sentence)
		if sentence != "" {
			items = append(items, sentence)
		}
	}
	return items
}
