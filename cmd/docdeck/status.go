package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	health, err := deps.Healths.Check(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "backend: %s", health.Status)
	if health.Version != "" {
		fmt.Fprintf(deps.Stdout, " (version %s)", health.Version)
	}
	fmt.Fprintln(deps.Stdout)

	token, err := deps.Credentials.Token(deps.Ctx)
	if err != nil {
		return err
	}
	if token != "" {
		fmt.Fprintln(deps.Stdout, "auth: logged in")
	} else {
		fmt.Fprintln(deps.Stdout, "auth: not logged in")
	}

	stats, err := deps.Searches.Stats(deps.Ctx)
	if err != nil {
		// Stats are best-effort; a degraded backend still reports health.
		fmt.Fprintf(deps.Stderr, "stats unavailable: %s\n", docdeck.UserMessage(err))
		return nil
	}
	fmt.Fprintf(deps.Stdout, "documents: %d (%d indexed), %d snippets, %d folders\n",
		stats.DocumentCount, stats.IndexedCount, stats.SnippetCount, stats.FolderCount)
	return nil
}
