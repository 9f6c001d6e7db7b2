package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := deps.History.ClearHistory(deps.Ctx); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "History cleared.")
		return nil
	}

	entries, err := deps.History.RecentSearches(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches yet.")
		return nil
	}

	for _, entry := range entries {
		mode := entry.Mode
		if mode == "" {
			mode = docdeck.ModeKeyword
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %s\n", entry.SearchedAt.Local().Format("2006-01-02 15:04"), mode, entry.Query)
	}
	return nil
}
