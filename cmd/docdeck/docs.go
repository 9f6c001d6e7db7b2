package main

import (
	"fmt"

	"github.com/mkowalczyk/docdeck"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if c.Folders {
		return c.listFolders(deps)
	}

	filter := docdeck.DocumentFilter{}
	if c.Folder != "" {
		filter.FolderID = &c.Folder
	}
	if c.Indexed {
		indexed := true
		filter.Indexed = &indexed
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docdeck upload' to add some.")
		return nil
	}

	for _, doc := range docs {
		marker := " "
		if doc.Indexed {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s\n", marker, doc.ID, doc.Title)
	}
	fmt.Fprintf(deps.Stdout, "\n%d documents (* = indexed)\n", len(docs))
	return nil
}

func (c *DocsCmd) listFolders(deps *Dependencies) error {
	folders, err := deps.Documents.FindFolders(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.UserMessage(err))
		return err
	}

	if len(folders) == 0 {
		fmt.Fprintln(deps.Stdout, "No folders found.")
		return nil
	}

	for _, folder := range folders {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%d documents)\n", folder.ID, folder.Name, folder.DocumentCount)
	}
	return nil
}
