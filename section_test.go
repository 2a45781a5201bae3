package docparse_test

import (
	"testing"

	"github.com/fwojciec/docparse"
	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	t.Parallel()

	t.Run("splits on blank lines", func(t *testing.T) {
		t.Parallel()

		sections := docparse.SplitSections("Section 1\n\nSection 2\n\nSection 3")

		assert.Equal(t, []string{"Section 1", "Section 2", "Section 3"}, sections)
	})

	t.Run("splits on runs of more than two newlines", func(t *testing.T) {
		t.Parallel()

		sections := docparse.SplitSections("Section 1\n\n\nSection 2")

		assert.Equal(t, []string{"Section 1", "Section 2"}, sections)
	})

	t.Run("keeps single newlines within a section", func(t *testing.T) {
		t.Parallel()

		sections := docparse.SplitSections("line one\nline two\n\nnext")

		assert.Equal(t, []string{"line one\nline two", "next"}, sections)
	})

	t.Run("trims sections and drops empties", func(t *testing.T) {
		t.Parallel()

		sections := docparse.SplitSections("  first  \n\n   \n\nsecond")

		assert.Equal(t, []string{"first", "second"}, sections)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docparse.SplitSections(""))
		assert.Nil(t, docparse.SplitSections("  \n \n "))
	})
}
