package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the login command: store the token, then verify it against
// the backend so a bad token is caught immediately.
func (c *LoginCmd) Run(deps *Dependencies) error {
	if err := deps.Credentials.SetToken(deps.Ctx, c.Token); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	health, err := deps.Healths.Check(deps.Ctx)
	if err != nil {
		// A 401 has already cleared the bad token.
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}
	if !health.OK() {
		return docdeck.Errorf(docdeck.EUNAVAILABLE, "backend reports status %q", health.Status)
	}

	fmt.Fprintln(deps.Stdout, "Logged in.")
	return nil
}

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	if err := deps.Credentials.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Logged out.")
	return nil
}
