package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/platform/logger"
)

// IntroductionService produces the short spoken-style introductions Cris
// gives before each lesson phase.
type IntroductionService interface {
	// Generate returns an introduction for the theme and phase. Unknown
	// phases fail validation rather than reaching the model.
	Generate(ctx context.Context, tema, fase string) (string, error)
}

// introServiceImpl implements the IntroductionService interface.
type introServiceImpl struct {
	generator generation.TextGenerator
	logger    *slog.Logger
}

// NewIntroductionService creates a new IntroductionService.
// It returns an error if the generator is nil.
func NewIntroductionService(
	generator generation.TextGenerator,
	logger *slog.Logger,
) (IntroductionService, error) {
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &introServiceImpl{
		generator: generator,
		logger:    logger.With(slog.String("component", "introduction_service")),
	}, nil
}

// Generate implements IntroductionService.Generate
func (s *introServiceImpl) Generate(ctx context.Context, tema, fase string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(tema) == "" {
		return "", domain.NewValidationError("tema", "cannot be empty", domain.ErrValidation)
	}

	prompt, ok := generation.IntroductionPrompt(tema, fase)
	if !ok {
		return "", domain.NewValidationError("fase",
			fmt.Sprintf("must be one of %s, %s or %s",
				generation.PhaseWords, generation.PhaseSentences, generation.PhaseGames),
			ErrUnknownPhase)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("introduction generation call failed: %w", err)
	}

	log.Debug("introduction produced",
		slog.String("fase", fase),
		slog.Int("length", len(text)))

	return text, nil
}
