package main

import (
	"fmt"

	"github.com/fwojciec/docparse/htmltomarkdown"
	dochttp "github.com/fwojciec/docparse/http"
	"github.com/fwojciec/docparse/trafilatura"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := dochttp.NewServer()
	server.Addr = c.Addr
	server.Parser = deps.Parser
	server.Extractor = trafilatura.NewExtractor()
	server.Markdown = htmltomarkdown.NewConverter()
	server.Conversions = deps.Conversions

	if err := server.Open(); err != nil {
		return err
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	// Block until the context is cancelled.
	<-deps.Ctx.Done()

	return nil
}
