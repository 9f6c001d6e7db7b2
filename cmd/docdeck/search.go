package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := docdeck.SearchQuery{
		Text:  c.Query,
		Limit: c.Limit,
	}
	if c.Semantic {
		query.Mode = docdeck.ModeSemantic
	}
	query.Scope = docdeck.Scope{FolderID: c.Folder, DocumentID: c.Document}
	if err := query.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	// History failures must not block the search itself.
	_ = deps.History.RecordSearch(deps.Ctx, query)

	shown := 0
	for {
		page, err := deps.Searches.Search(deps.Ctx, query)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
			return err
		}

		if shown == 0 && len(page.Results) == 0 {
			fmt.Fprintln(deps.Stdout, "No results.")
			return nil
		}
		for _, r := range page.Results {
			shown++
			fmt.Fprintf(deps.Stdout, "%3d. %s  (%s, %.2f)\n", shown, r.Title, r.DocumentID, r.Score)
			if r.Excerpt != "" {
				fmt.Fprintf(deps.Stdout, "     %s\n", r.Excerpt)
			}
		}

		if !c.All || page.NextCursor == "" {
			if page.NextCursor != "" {
				fmt.Fprintf(deps.Stdout, "\n%d of %d shown. Re-run with --all for the rest.\n", shown, page.Total)
			}
			return nil
		}
		query.Cursor = page.NextCursor
	}
}
