package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mkowalczyk/docdeck"
)

// answerMsg carries a resolved assistant reply back into the chat model.
// sessionID ties it to the conversation it belongs to; a completion for a
// reset conversation is discarded.
type answerMsg struct {
	sessionID     string
	placeholderID string
	answer        *docdeck.Answer
	err           error
}

// ChatModel is the Bubble Tea model for the chat screen. User messages are
// appended synchronously and assistant replies hold their position as
// pending placeholders until the backend answers, so the transcript always
// reads in turn order no matter the completion order.
type ChatModel struct {
	rag  docdeck.RAGService
	conv *docdeck.Conversation

	input    textinput.Model
	viewport viewport.Model

	scope   docdeck.Scope
	pending int
	errMsg  string
	ready   bool
	now     func() time.Time
}

// NewChatModel creates a chat screen over the given service.
func NewChatModel(rag docdeck.RAGService) ChatModel {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Ask a question"
	ti.Focus()

	return ChatModel{
		rag:      rag,
		conv:     docdeck.NewConversation(uuid.New().String()),
		input:    ti,
		viewport: viewport.New(0, 0),
		now:      time.Now,
	}
}

// Init starts the input cursor blink.
func (m ChatModel) Init() tea.Cmd { return textinput.Blink }

// Conversation returns the transcript in turn order.
func (m ChatModel) Conversation() *docdeck.Conversation { return m.conv }

// SetScope restricts retrieval for subsequent questions.
func (m ChatModel) SetScope(scope docdeck.Scope) ChatModel {
	m.scope = scope
	return m
}

// Update handles key, window, and completion messages.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.viewport.Width = msg.Width
		m.viewport.Height = maxInt(3, msg.Height-5)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil

	case answerMsg:
		return m.applyAnswer(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			return m.reset(), nil
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m.ask(question)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask appends the user turn and a pending assistant placeholder, then
// sends the question with the resolved history.
func (m ChatModel) ask(question string) (tea.Model, tea.Cmd) {
	history := resolvedHistory(m.conv)

	m.conv.Append(docdeck.Message{
		ID:        uuid.New().String(),
		Role:      docdeck.RoleUser,
		Content:   question,
		CreatedAt: m.now(),
	})
	placeholderID := uuid.New().String()
	m.conv.Append(docdeck.Message{
		ID:        placeholderID,
		Role:      docdeck.RoleAssistant,
		Pending:   true,
		CreatedAt: m.now(),
	})
	m.pending++
	m.errMsg = ""
	m.viewport.SetContent(m.renderTranscript())

	in := docdeck.ConverseInput{
		SessionID: m.conv.SessionID,
		Question:  question,
		History:   history,
		Scope:     m.scope,
	}
	sessionID := m.conv.SessionID
	return m, func() tea.Msg {
		answer, err := m.rag.Converse(context.Background(), in)
		return answerMsg{sessionID: sessionID, placeholderID: placeholderID, answer: answer, err: err}
	}
}

// applyAnswer resolves the placeholder in place. Completions for a reset
// conversation, or whose placeholder is gone, are discarded silently.
func (m ChatModel) applyAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	if msg.sessionID != m.conv.SessionID {
		return m, nil
	}
	if msg.err != nil {
		if m.conv.Resolve(msg.placeholderID, docdeck.UserMessage(msg.err)) {
			m.pending--
			m.errMsg = docdeck.UserMessage(msg.err)
			m.viewport.SetContent(m.renderTranscript())
		}
		return m, nil
	}
	if m.conv.Resolve(msg.placeholderID, msg.answer.Text) {
		m.pending--
		m.viewport.SetContent(m.renderTranscript())
	}
	return m, nil
}

// reset clears the transcript and rotates the session, so replies still in
// flight for the old session no longer resolve.
func (m ChatModel) reset() ChatModel {
	m.conv.Reset(uuid.New().String())
	m.pending = 0
	m.errMsg = ""
	m.viewport.SetContent(m.renderTranscript())
	return m
}

// resolvedHistory returns prior turns with pending placeholders excluded;
// the backend only ever sees completed exchanges.
func resolvedHistory(conv *docdeck.Conversation) []docdeck.Message {
	var history []docdeck.Message
	for _, msg := range conv.Messages() {
		if msg.Pending {
			continue
		}
		history = append(history, msg)
	}
	return history
}

// View renders the chat screen.
func (m ChatModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := "ctrl+r resets the conversation"
	if m.pending > 0 {
		status = "thinking..."
	}
	if m.errMsg != "" {
		status = errorStyle.Render(m.errMsg)
	}

	return titleStyle.Render("docdeck chat") + "\n" +
		boxStyle.Render(m.viewport.View()) + "\n" +
		boxStyle.Render(m.input.View()) + "\n" +
		statusStyle.Render(status)
}

func (m ChatModel) renderTranscript() string {
	messages := m.conv.Messages()
	if len(messages) == 0 {
		return "Ask a question to get started."
	}
	var b strings.Builder
	for _, msg := range messages {
		switch {
		case msg.Pending:
			b.WriteString(pendingStyle.Render("…") + "\n")
		case msg.Role == docdeck.RoleUser:
			b.WriteString(userStyle.Render("you: ") + msg.Content + "\n")
		default:
			b.WriteString(assistantStyle.Render("docdeck: ") + msg.Content + "\n")
		}
	}
	return b.String()
}

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
