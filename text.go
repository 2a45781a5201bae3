package docparse

import (
	"regexp"
	"strings"
)

// Rewrite patterns applied by NormalizeText, in application order.
var (
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	hspaceRe       = regexp.MustCompile(`[ \t]+`)
	doubleQuoteRe  = regexp.MustCompile("[“”„]")
	singleQuoteRe  = regexp.MustCompile("[‘’‚]")
	dashRe         = regexp.MustCompile("[–—]")
	ellipsisRe     = regexp.MustCompile("…")
	hyphenWrapRe   = regexp.MustCompile(`(\w+)-\n(\w+)`)
	brokenParaRe   = regexp.MustCompile(`(\w)\.\n(\w)`)
	unicodeSpaceRe = regexp.MustCompile("[\u00A0\u2000-\u200B\u202F\u205F\u3000]")
	bulletGlyphRe  = regexp.MustCompile("[•◦◘○●]")
)

// NormalizeText applies a single cleanup pass over raw extracted text:
// whitespace collapsing, typographic character substitution, OCR
// line-wrap repair, and bullet canonicalization. The pass is
// idempotent; applying it to its own output is a no-op.
func NormalizeText(text string) string {
	text = blankLineRe.ReplaceAllString(text, "\n\n")
	text = hspaceRe.ReplaceAllString(text, " ")

	text = doubleQuoteRe.ReplaceAllString(text, `"`)
	text = singleQuoteRe.ReplaceAllString(text, "'")
	text = dashRe.ReplaceAllString(text, "-")
	text = ellipsisRe.ReplaceAllString(text, "...")

	// Rejoin line-wrap hyphenation common in OCR output.
	text = hyphenWrapRe.ReplaceAllString(text, "$1$2")

	// Repair paragraph breaks where a sentence-ending period is glued
	// to the next line.
	text = brokenParaRe.ReplaceAllString(text, "$1. $2")

	text = unicodeSpaceRe.ReplaceAllString(text, " ")
	text = bulletGlyphRe.ReplaceAllString(text, "•")

	return strings.TrimSpace(text)
}
