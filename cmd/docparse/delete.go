package main

import (
	"fmt"

	"github.com/fwojciec/docparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		err := fmt.Errorf("deleting a conversion is permanent; re-run with --force to confirm")
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := deps.Conversions.DeleteConversion(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted conversion %s\n", c.ID)

	return nil
}
