package normalize

import (
	"strings"

	"github.com/fwojciec/docparse"
)

// improveStructure is phase 2: it stamps every block with a snapshot
// of the rolling chapter/section/subsection context and merges runs of
// very short adjacent paragraphs. A heading updates the context before
// receiving its own stamp, so it appears in its own context snapshot.
func improveStructure(blocks []*docparse.Block) []*docparse.Block {
	improved := make([]*docparse.Block, 0, len(blocks))
	var ctx docparse.StructuralContext

	for _, block := range blocks {
		if block.Type == docparse.BlockHeading {
			updateContext(block, &ctx)
		}

		snapshot := ctx
		block.Metadata.StructuralContext = &snapshot

		if block.Type == docparse.BlockParagraph && len(improved) > 0 {
			prev := improved[len(improved)-1]
			if prev.Type == docparse.BlockParagraph && len(block.Content) < 100 && len(prev.Content) < 100 {
				prev.Content += " " + block.Content
				prev.Metadata.URLs = append(prev.Metadata.URLs, block.Metadata.URLs...)
				continue
			}
		}

		improved = append(improved, block)
	}

	return improved
}

func updateContext(block *docparse.Block, ctx *docparse.StructuralContext) {
	sectionType := block.Metadata.SectionType
	switch {
	case block.Level == 1 || strings.Contains(sectionType, "chapter"):
		ctx.Chapter = block.Content
		ctx.Section = ""
		ctx.Subsection = ""
	case block.Level == 2 || strings.Contains(sectionType, "section"):
		ctx.Section = block.Content
		ctx.Subsection = ""
	case block.Level >= 3:
		ctx.Subsection = block.Content
	}
}
