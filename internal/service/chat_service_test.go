package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/mocks"
)

func TestChatPrependsPersona(t *testing.T) {
	t.Parallel()

	model := &mocks.MockChatModel{Reply: "Olá! O sinal para gato é..."}
	svc, err := NewChatService(model, nil)
	require.NoError(t, err)

	history := []generation.Message{
		{Role: generation.RoleUser, Content: "como digo gato em Libras?"},
	}

	reply, err := svc.Send(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Olá! O sinal para gato é...", reply)

	require.Equal(t, 1, model.ChatCalls.Count)
	sent := model.ChatCalls.Histories[0]
	require.Len(t, sent, 2)
	assert.Equal(t, generation.ChatPrePrompt, sent[0].Content)
	assert.Equal(t, generation.RoleUser, sent[0].Role)
	assert.Equal(t, "como digo gato em Libras?", sent[1].Content)
}

func TestChatEmptyHistory(t *testing.T) {
	t.Parallel()

	svc, err := NewChatService(&mocks.MockChatModel{}, nil)
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChatUpstreamFailure(t *testing.T) {
	t.Parallel()

	model := &mocks.MockChatModel{Err: errors.New("model unreachable")}
	svc, err := NewChatService(model, nil)
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), []generation.Message{
		{Role: generation.RoleUser, Content: "oi"},
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
