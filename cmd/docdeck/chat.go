package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkowalczyk/docdeck"
	"github.com/mkowalczyk/docdeck/tui"
)

// Run executes the chat command, handing the terminal to the TUI.
func (c *ChatCmd) Run(deps *Dependencies) error {
	scope := docdeck.Scope{FolderID: c.Folder, DocumentID: c.Document}
	if err := scope.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdeck.ErrorMessage(err))
		return err
	}

	model := tui.NewChatModel(deps.RAG).SetScope(scope)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
