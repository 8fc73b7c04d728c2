package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/platform/logger"
	"github.com/sinalize/sinalize-api/internal/store"
)

// RoadmapService generates and manages study roadmaps.
type RoadmapService interface {
	// GenerateRoadmap builds a roadmap of the given kind for the user,
	// grounding the prompt in their stored profile plus the stated interest,
	// and persists it. Returns store.ErrUserNotFound for unknown users.
	GenerateRoadmap(ctx context.Context, userID uuid.UUID, kind domain.RoadmapKind, interest string) (*domain.Roadmap, error)

	// ListTopics returns every topic of every roadmap of the user as one
	// flat ordered list. Returns store.ErrUserNotFound for unknown users.
	ListTopics(ctx context.Context, userID uuid.UUID) ([]string, error)

	// DeleteRoadmaps removes all roadmaps of the user, reporting the count.
	// The user record itself is never touched.
	DeleteRoadmaps(ctx context.Context, userID uuid.UUID) (int64, error)
}

// roadmapServiceImpl implements the RoadmapService interface.
type roadmapServiceImpl struct {
	userStore    store.UserStore
	roadmapStore store.RoadmapStore
	generator    generation.TextGenerator
	logger       *slog.Logger
}

// NewRoadmapService creates a new RoadmapService.
// It returns an error if any of the required dependencies are nil.
func NewRoadmapService(
	userStore store.UserStore,
	roadmapStore store.RoadmapStore,
	generator generation.TextGenerator,
	logger *slog.Logger,
) (RoadmapService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if roadmapStore == nil {
		return nil, domain.NewValidationError("roadmapStore", "cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &roadmapServiceImpl{
		userStore:    userStore,
		roadmapStore: roadmapStore,
		generator:    generator,
		logger:       logger.With(slog.String("component", "roadmap_service")),
	}, nil
}

// GenerateRoadmap implements RoadmapService.GenerateRoadmap
func (s *roadmapServiceImpl) GenerateRoadmap(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.RoadmapKind,
	interest string,
) (*domain.Roadmap, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	userInfo := buildUserInfo(user, interest)

	var prompt string
	switch kind {
	case domain.RoadmapKindStudent:
		prompt = generation.StudentRoadmapPrompt(userInfo)
	case domain.RoadmapKindParent:
		prompt = generation.ParentRoadmapPrompt(userInfo)
	default:
		return nil, domain.NewValidationError("kind", "must be student or parent", domain.ErrValidation)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation call failed: %w", err)
	}

	var schema generation.RoadmapSchema
	if err := generation.ExtractJSON(raw, &schema); err != nil {
		return nil, fmt.Errorf("%w: no usable topic list: %v", generation.ErrGenerationFailed, err)
	}
	if len(schema.Topics) == 0 {
		return nil, fmt.Errorf("%w: empty topic list", generation.ErrGenerationFailed)
	}

	roadmap, err := domain.NewRoadmap(user.ID, kind, schema.Topics)
	if err != nil {
		return nil, err
	}

	if err := s.roadmapStore.Create(ctx, roadmap); err != nil {
		return nil, fmt.Errorf("failed to save roadmap: %w", err)
	}

	log.Info("generated roadmap",
		slog.String("roadmap_id", roadmap.ID.String()),
		slog.String("kind", string(kind)),
		slog.Int("topic_count", len(roadmap.Topics)))

	return roadmap, nil
}

// ListTopics implements RoadmapService.ListTopics
func (s *roadmapServiceImpl) ListTopics(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	roadmaps, err := s.roadmapStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}

	topics := make([]string, 0)
	for _, roadmap := range roadmaps {
		topics = append(topics, roadmap.Topics...)
	}
	return topics, nil
}

// DeleteRoadmaps implements RoadmapService.DeleteRoadmaps
func (s *roadmapServiceImpl) DeleteRoadmaps(ctx context.Context, userID uuid.UUID) (int64, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return 0, err
	}

	deleted, err := s.roadmapStore.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete roadmaps: %w", err)
	}
	return deleted, nil
}

// buildUserInfo renders the stored profile fields into the prose block the
// roadmap prompts expect. An explicit interest overrides the stored one.
func buildUserInfo(user *domain.User, interest string) string {
	if interest == "" {
		interest = user.Interest
	}
	return fmt.Sprintf(
		"Idade: %d. Nível de experiência em Libras: %s. Interesse: %s. Tempo de estudo por dia: %d minutos.",
		user.Age, user.ExperienceLevel, interest, user.LearningTime,
	)
}
