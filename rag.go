package docdeck

import (
	"context"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation. A message with Pending=true is a
// placeholder holding an assistant reply's position until it resolves.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Pending   bool      `json:"pending,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is an append-only, insertion-ordered message sequence scoped
// to one chat session. Assistant replies are appended as pending
// placeholders and later resolved in place, so list order always reflects
// turn order regardless of completion order. Not safe for concurrent use;
// confine to one goroutine or event loop.
type Conversation struct {
	SessionID string
	messages  []Message
}

// NewConversation creates an empty conversation for the session.
func NewConversation(sessionID string) *Conversation {
	return &Conversation{SessionID: sessionID}
}

// Messages returns the messages in insertion order. The returned slice is
// shared; callers must not modify it.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Resolve replaces the message with the given ID in place, keeping its
// position, and clears its pending flag. Returns false if no message with
// that ID exists (e.g., the conversation was reset while the reply was in
// flight); callers treat that as a discard.
func (c *Conversation) Resolve(id, content string) bool {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content = content
			c.messages[i].Pending = false
			return true
		}
	}
	return false
}

// Reset clears the history and switches to a new session identifier.
// Pending replies from the previous session no longer resolve.
func (c *Conversation) Reset(sessionID string) {
	c.SessionID = sessionID
	c.messages = nil
}

// Source is a snippet cited by a RAG answer.
type Source struct {
	DocumentID string  `json:"documentId"`
	SnippetID  string  `json:"snippetId,omitempty"`
	Title      string  `json:"title,omitempty"`
	Excerpt    string  `json:"excerpt,omitempty"`
	Score      float32 `json:"score,omitempty"`
}

// Answer is the backend's response to a question-answering request.
type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// AskInput represents a question-answering request. Scope restricts
// retrieval the same way it restricts search.
type AskInput struct {
	Question string `json:"question"`
	Scope    Scope  `json:"scope,omitzero"`
	TopK     int    `json:"topK,omitempty"`
}

// Validate returns an error if the input contains invalid fields.
func (in AskInput) Validate() error {
	if in.Question == "" {
		return Errorf(EINVALID, "question required")
	}
	return in.Scope.Validate()
}

// ConverseInput represents one turn of a multi-turn conversation. History
// carries prior resolved turns; pending placeholders are excluded.
type ConverseInput struct {
	SessionID string    `json:"sessionId"`
	Question  string    `json:"question"`
	History   []Message `json:"history,omitempty"`
	Scope     Scope     `json:"scope,omitzero"`
}

// Validate returns an error if the input contains invalid fields.
func (in ConverseInput) Validate() error {
	if in.SessionID == "" {
		return Errorf(EINVALID, "session ID required")
	}
	if in.Question == "" {
		return Errorf(EINVALID, "question required")
	}
	return in.Scope.Validate()
}

// CompareInput requests a comparison between two documents.
type CompareInput struct {
	DocumentIDs []string `json:"documentIds"`
	Question    string   `json:"question,omitempty"`
}

// Validate returns an error if fewer than two documents are given.
func (in CompareInput) Validate() error {
	if len(in.DocumentIDs) < 2 {
		return Errorf(EINVALID, "comparison requires at least two documents")
	}
	return nil
}

// RAGConfig reports backend capabilities and limits.
type RAGConfig struct {
	Model          string `json:"model,omitempty"`
	MaxQuestionLen int    `json:"maxQuestionLen,omitempty"`
	MaxTopK        int    `json:"maxTopK,omitempty"`
	MultiStep      bool   `json:"multiStep"`
	Compare        bool   `json:"compare"`
}

// RAGService provides question answering over indexed documents. All
// retrieval and generation happens on the backend; the client only carries
// questions and conversation history.
type RAGService interface {
	// Ask answers a single question.
	Ask(ctx context.Context, in AskInput) (*Answer, error)

	// MultiStepAsk decomposes a complex question into retrieval steps.
	MultiStepAsk(ctx context.Context, in AskInput) (*Answer, error)

	// Converse answers a question in the context of prior turns.
	Converse(ctx context.Context, in ConverseInput) (*Answer, error)

	// Summarize produces a summary of a document.
	// Returns ENOTFOUND if the document does not exist.
	Summarize(ctx context.Context, documentID string) (*Answer, error)

	// Compare contrasts two or more documents.
	Compare(ctx context.Context, in CompareInput) (*Answer, error)

	// Config returns backend capability and limit discovery.
	Config(ctx context.Context) (*RAGConfig, error)
}
