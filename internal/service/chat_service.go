package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/platform/logger"
)

// ChatService answers free-form questions about sign language as Cris, the
// app's teaching persona.
type ChatService interface {
	// Send replays the conversation history to the chat model, with the Cris
	// persona instructions prepended, and returns the assistant reply.
	Send(ctx context.Context, messages []generation.Message) (string, error)
}

// chatServiceImpl implements the ChatService interface.
type chatServiceImpl struct {
	model  generation.ChatModel
	logger *slog.Logger
}

// NewChatService creates a new ChatService.
// It returns an error if the chat model is nil.
func NewChatService(model generation.ChatModel, logger *slog.Logger) (ChatService, error) {
	if model == nil {
		return nil, domain.NewValidationError("model", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &chatServiceImpl{
		model:  model,
		logger: logger.With(slog.String("component", "chat_service")),
	}, nil
}

// Send implements ChatService.Send
func (s *chatServiceImpl) Send(ctx context.Context, messages []generation.Message) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(messages) == 0 {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, ErrEmptyChatHistory)
	}

	history := make([]generation.Message, 0, len(messages)+1)
	history = append(history, generation.Message{
		Role:    generation.RoleUser,
		Content: generation.ChatPrePrompt,
	})
	history = append(history, messages...)

	reply, err := s.model.Chat(ctx, history)
	if err != nil {
		return "", fmt.Errorf("chat call failed: %w", err)
	}

	log.Debug("chat reply produced",
		slog.Int("history_length", len(messages)),
		slog.Int("reply_length", len(reply)))

	return reply, nil
}
