// Package mock provides function-field mocks for docparse interfaces.
package mock

import (
	"github.com/fwojciec/docparse"
)

var _ docparse.Parser = (*Parser)(nil)

// Parser is a mock implementation of docparse.Parser.
type Parser struct {
	ParseFn func(text string, opts docparse.ParseOptions) (*docparse.Document, error)
}

func (p *Parser) Parse(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
	return p.ParseFn(text, opts)
}
