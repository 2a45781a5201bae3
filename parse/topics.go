package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/docparse"
)

const maxTopics = 20

var tokenRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// englishStopwords is the default stop-word set. Languages without a
// dedicated list fall back to it.
var englishStopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but if because as until while " +
			"of at by for with about against between into through " +
			"during before after above below to from up down in " +
			"out on off over under again further then once here " +
			"there when where why how all any both each few more " +
			"most other some such no nor not only own same so " +
			"than too very can will just should now") {
		englishStopwords[w] = struct{}{}
	}
}

func stopwordsFor(lang string) map[string]struct{} {
	// Only English ships a stop-word list for now; the lang parameter
	// keeps the call sites honest for when more lists are added.
	_ = lang
	return englishStopwords
}

// extractTopics returns the most frequent non-stop-word tokens from
// heading and paragraph content: alphabetic runs of three or more
// letters occurring more than once, frequency-descending with ties
// broken by first occurrence, capped at 20.
func extractTopics(blocks []*docparse.Block, lang string) []string {
	var sb strings.Builder
	for _, block := range blocks {
		if block.Type == docparse.BlockHeading || block.Type == docparse.BlockParagraph {
			sb.WriteString(block.Content)
			sb.WriteString(" ")
		}
	}

	stop := stopwordsFor(lang)
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, token := range tokenRe.FindAllString(strings.ToLower(sb.String()), -1) {
		if _, ok := stop[token]; ok {
			continue
		}
		if _, ok := counts[token]; !ok {
			firstSeen[token] = i
			order = append(order, token)
		}
		counts[token]++
	}

	topics := make([]string, 0, len(order))
	for _, token := range order {
		if counts[token] > 1 {
			topics = append(topics, token)
		}
	}

	sort.SliceStable(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return firstSeen[topics[i]] < firstSeen[topics[j]]
	})

	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}
