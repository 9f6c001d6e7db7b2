package main_test

import (
	"context"
	"testing"

	"github.com/mkowalczyk/docdeck"
	main "github.com/mkowalczyk/docdeck/cmd/docdeck"
	"github.com/mkowalczyk/docdeck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdAsk(t *testing.T) {
	t.Parallel()

	t.Run("prints the answer", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.RAG = &mock.RAGService{
			AskFn: func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
				assert.Equal(t, "what is raft?", in.Question)
				return &docdeck.Answer{Text: "A consensus algorithm."}, nil
			},
		}

		cmd := &main.AskCmd{Question: "what is raft?"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "A consensus algorithm.")
	})

	t.Run("multi-step flag routes to MultiStepAsk", func(t *testing.T) {
		t.Parallel()

		multiCalled := false
		deps, _, _ := testDeps()
		deps.RAG = &mock.RAGService{
			AskFn: func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
				t.Error("plain Ask must not be called")
				return nil, nil
			},
			MultiStepAskFn: func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
				multiCalled = true
				return &docdeck.Answer{Text: "step by step"}, nil
			},
		}

		cmd := &main.AskCmd{Question: "compare raft and paxos", MultiStep: true}
		require.NoError(t, cmd.Run(deps))
		assert.True(t, multiCalled)
	})

	t.Run("sources flag prints citations", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.RAG = &mock.RAGService{
			AskFn: func(ctx context.Context, in docdeck.AskInput) (*docdeck.Answer, error) {
				return &docdeck.Answer{
					Text:    "answer",
					Sources: []docdeck.Source{{DocumentID: "d1", Title: "Raft Paper"}},
				}, nil
			},
		}

		cmd := &main.AskCmd{Question: "what is raft?", Sources: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Sources:")
		assert.Contains(t, stdout.String(), "Raft Paper")
	})

	t.Run("rejects conflicting scopes before any network call", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()

		cmd := &main.AskCmd{Question: "what is raft?", Folder: "F1", Document: "D1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docdeck.EINVALID, docdeck.ErrorCode(err))
		assert.Contains(t, stderr.String(), "mutually exclusive")
	})
}

func TestCmdLogin(t *testing.T) {
	t.Parallel()

	t.Run("stores the token and verifies it", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Healths = &mock.HealthService{
			CheckFn: func(ctx context.Context) (*docdeck.Health, error) {
				return &docdeck.Health{Status: "ok"}, nil
			},
		}

		cmd := &main.LoginCmd{Token: "tok-1"}
		require.NoError(t, cmd.Run(deps))

		token, err := deps.Credentials.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
		assert.Contains(t, stdout.String(), "Logged in.")
	})

	t.Run("reports a rejected token", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Healths = &mock.HealthService{
			CheckFn: func(ctx context.Context) (*docdeck.Health, error) {
				return nil, docdeck.Errorf(docdeck.EUNAUTHORIZED, "bad token")
			},
		}

		cmd := &main.LoginCmd{Token: "bad"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "authentication required")
	})
}

func TestCmdLogout(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps()
	require.NoError(t, deps.Credentials.SetToken(context.Background(), "tok-1"))

	cmd := &main.LogoutCmd{}
	require.NoError(t, cmd.Run(deps))

	token, err := deps.Credentials.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Contains(t, stdout.String(), "Logged out.")
}
