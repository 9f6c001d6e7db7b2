package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the index command. A single ID uses the per-document
// endpoint; multiple IDs go out as one batch request.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if len(c.IDs) == 1 {
		if err := deps.Documents.IndexDocument(deps.Ctx, c.IDs[0]); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "indexed %s\n", c.IDs[0])
		return nil
	}

	result, err := deps.Documents.IndexDocuments(deps.Ctx, c.IDs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "indexed %d of %d documents\n", len(result.Indexed), len(c.IDs))
	for _, id := range result.Failed {
		fmt.Fprintf(deps.Stderr, "failed: %s\n", id)
	}
	if len(result.Failed) > 0 {
		return docdeck.Errorf(docdeck.EINTERNAL, "%d documents failed to index", len(result.Failed))
	}
	return nil
}

// Run executes the deindex command.
func (c *DeindexCmd) Run(deps *Dependencies) error {
	for _, id := range c.IDs {
		if err := deps.Documents.DeindexDocument(deps.Ctx, id); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "deindexed %s\n", id)
	}
	return nil
}
