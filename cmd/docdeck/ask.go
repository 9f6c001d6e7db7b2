package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	in := docdeck.AskInput{
		Question: c.Question,
		TopK:     c.TopK,
	}
	in.Scope = docdeck.Scope{FolderID: c.Folder, DocumentID: c.Document}
	if err := in.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	ask := deps.RAG.Ask
	if c.MultiStep {
		ask = deps.RAG.MultiStepAsk
	}

	answer, err := ask(deps.Ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Text)

	if c.Sources && len(answer.Sources) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSources:")
		for _, src := range answer.Sources {
			title := src.Title
			if title == "" {
				title = src.DocumentID
			}
			fmt.Fprintf(deps.Stdout, "  - %s\n", title)
		}
	}
	return nil
}
