package main

import (
	"fmt"

	"github.com/fwojciec/docparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docparse.ConversionFilter{Limit: c.Limit}
	if c.SourcePath != "" {
		filter.SourcePath = &c.SourcePath
	}

	convs, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	if len(convs) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions found. Use 'docparse convert' to create one.")
		return nil
	}

	for _, conv := range convs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", conv.ID, conv.SourcePath, conv.Title)
	}

	return nil
}
