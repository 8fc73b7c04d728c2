package gemini

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/generation"
)

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewGenerator(context.Background(), nil, config.LLMConfig{
			GeminiAPIKey: "key",
			ModelName:    "gemini-2.0-flash",
		})
		assert.Error(t, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := NewGenerator(context.Background(), logger, config.LLMConfig{
			ModelName: "gemini-2.0-flash",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("missing model name", func(t *testing.T) {
		_, err := NewGenerator(context.Background(), logger, config.LLMConfig{
			GeminiAPIKey: "key",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	t.Run("nil response", func(t *testing.T) {
		_, err := extractText(nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := extractText(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("safety blocked", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
			},
		}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})

	t.Run("empty content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{}},
			},
		}
		_, err := extractText(resp)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("text is returned", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: genai.NewContentFromText(`{"topics": ["animais"]}`, genai.RoleModel)},
			},
		}
		text, err := extractText(resp)
		assert.NoError(t, err)
		assert.Equal(t, `{"topics": ["animais"]}`, text)
	})
}
