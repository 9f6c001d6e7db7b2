package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkowalczyk/docdeck"
	"github.com/mkowalczyk/docdeck/mock"
	"github.com/mkowalczyk/docdeck/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// updChat drives Update and narrows the returned model back to the
// concrete type.
func updChat(m tui.ChatModel, msg tea.Msg) (tui.ChatModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(tui.ChatModel), cmd
}

// askChat types the question and presses enter, returning the completion
// command without running it so tests control resolution order.
func askChat(t *testing.T, m tui.ChatModel, question string) (tui.ChatModel, tea.Cmd) {
	t.Helper()
	m, _ = updChat(m, keyMsg(question))
	m, cmd := updChat(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	return m, cmd
}

func transcript(m tui.ChatModel) []docdeck.Message {
	return m.Conversation().Messages()
}

func echoRAG() *mock.RAGService {
	return &mock.RAGService{
		ConverseFn: func(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
			return &docdeck.Answer{Text: "re: " + in.Question}, nil
		},
	}
}

func TestChatModel_Ask(t *testing.T) {
	t.Parallel()

	t.Run("user turn and placeholder appear synchronously", func(t *testing.T) {
		t.Parallel()

		m := tui.NewChatModel(echoRAG())
		m, _ = askChat(t, m, "what is raft?")

		msgs := transcript(m)
		require.Len(t, msgs, 2)
		assert.Equal(t, docdeck.RoleUser, msgs[0].Role)
		assert.Equal(t, "what is raft?", msgs[0].Content)
		assert.Equal(t, docdeck.RoleAssistant, msgs[1].Role)
		assert.True(t, msgs[1].Pending)
	})

	t.Run("completion resolves the placeholder in place", func(t *testing.T) {
		t.Parallel()

		m := tui.NewChatModel(echoRAG())
		m, cmd := askChat(t, m, "what is raft?")
		m, _ = updChat(m, cmd())

		msgs := transcript(m)
		require.Len(t, msgs, 2)
		assert.False(t, msgs[1].Pending)
		assert.Equal(t, "re: what is raft?", msgs[1].Content)
	})

	t.Run("history excludes pending placeholders", func(t *testing.T) {
		t.Parallel()

		var histories [][]docdeck.Message
		rag := &mock.RAGService{
			ConverseFn: func(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
				histories = append(histories, in.History)
				return &docdeck.Answer{Text: "answer"}, nil
			},
		}

		m := tui.NewChatModel(rag)
		m, cmd1 := askChat(t, m, "first")
		m, cmd2 := askChat(t, m, "second")
		_ = cmd1()
		_ = cmd2()

		require.Len(t, histories, 2)
		assert.Empty(t, histories[0])
		// The second question went out while the first was unresolved, so
		// its history carries only the first user turn.
		require.Len(t, histories[1], 1)
		assert.Equal(t, "first", histories[1][0].Content)
		_ = m
	})
}

func TestChatModel_OutOfOrderResolution(t *testing.T) {
	t.Parallel()

	m := tui.NewChatModel(echoRAG())
	m, cmd1 := askChat(t, m, "first")
	m, cmd2 := askChat(t, m, "second")

	// The second reply lands before the first.
	m, _ = updChat(m, cmd2())
	m, _ = updChat(m, cmd1())

	msgs := transcript(m)
	require.Len(t, msgs, 4)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "re: first", msgs[1].Content)
	assert.Equal(t, "second", msgs[2].Content)
	assert.Equal(t, "re: second", msgs[3].Content)
	for _, msg := range msgs {
		assert.False(t, msg.Pending)
	}
}

func TestChatModel_Reset(t *testing.T) {
	t.Parallel()

	t.Run("clears the transcript and rotates the session", func(t *testing.T) {
		t.Parallel()

		m := tui.NewChatModel(echoRAG())
		m, cmd := askChat(t, m, "first")
		m, _ = updChat(m, cmd())
		before := m.Conversation().SessionID

		m, _ = updChat(m, tea.KeyMsg{Type: tea.KeyCtrlR})

		assert.Empty(t, transcript(m))
		assert.NotEqual(t, before, m.Conversation().SessionID)
	})

	t.Run("in-flight reply for the old session is discarded", func(t *testing.T) {
		t.Parallel()

		m := tui.NewChatModel(echoRAG())
		m, cmd := askChat(t, m, "first")

		m, _ = updChat(m, tea.KeyMsg{Type: tea.KeyCtrlR})
		m, _ = updChat(m, cmd())

		assert.Empty(t, transcript(m), "late completion must not resurrect a reset conversation")
	})
}

func TestChatModel_Errors(t *testing.T) {
	t.Parallel()

	rag := &mock.RAGService{
		ConverseFn: func(ctx context.Context, in docdeck.ConverseInput) (*docdeck.Answer, error) {
			return nil, docdeck.Errorf(docdeck.EUNAVAILABLE, "dial tcp: connection refused")
		},
	}

	m := tui.NewChatModel(rag)
	m, cmd := askChat(t, m, "what is raft?")
	m, _ = updChat(m, cmd())

	msgs := transcript(m)
	require.Len(t, msgs, 2)
	assert.False(t, msgs[1].Pending, "error still resolves the placeholder")
	assert.Equal(t, "server error, retry later", msgs[1].Content)
}
