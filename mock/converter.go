package mock

import (
	"github.com/fwojciec/docparse"
)

var _ docparse.MarkdownConverter = (*MarkdownConverter)(nil)

// MarkdownConverter is a mock implementation of docparse.MarkdownConverter.
type MarkdownConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *MarkdownConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
