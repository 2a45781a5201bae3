package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	conv, err := deps.Conversions.FindConversionByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(conv.Result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
