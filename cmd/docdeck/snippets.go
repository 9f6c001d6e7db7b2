package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the snippets command.
func (c *SnippetsCmd) Run(deps *Dependencies) error {
	if c.Query != "" {
		snippets, err := deps.Snippets.SearchSnippets(deps.Ctx, docdeck.SearchQuery{
			Text:  c.Query,
			Limit: c.Limit,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
			return err
		}
		printSnippets(deps, snippets)
		return nil
	}

	if c.Document == "" {
		err := docdeck.Errorf(docdeck.EINVALID, "either --document or --query is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	snippets, err := deps.Snippets.FindSnippets(deps.Ctx, docdeck.SnippetFilter{
		DocumentID: &c.Document,
		Limit:      c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}
	printSnippets(deps, snippets)
	return nil
}

func printSnippets(deps *Dependencies, snippets []*docdeck.Snippet) {
	if len(snippets) == 0 {
		fmt.Fprintln(deps.Stdout, "No snippets found.")
		return
	}
	for _, s := range snippets {
		fmt.Fprintf(deps.Stdout, "%s #%d (%s)\n%s\n\n", s.ID, s.Position, s.DocumentID, s.Content)
	}
}
