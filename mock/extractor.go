package mock

import (
	"github.com/fwojciec/docparse"
)

var _ docparse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docparse.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docparse.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docparse.ExtractResult, error) {
	return e.ExtractFn(html)
}
