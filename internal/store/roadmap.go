package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sinalize/sinalize-api/internal/domain"
)

// RoadmapStore defines the interface for roadmap persistence.
type RoadmapStore interface {
	// Create saves a new roadmap. Multiple roadmaps per user are allowed.
	Create(ctx context.Context, roadmap *domain.Roadmap) error

	// ListByUser retrieves all roadmaps of a user, oldest first.
	// Returns an empty slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Roadmap, error)

	// DeleteByUser removes all roadmaps of a user and reports how many
	// were deleted. Deleting roadmaps never touches the user record.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// WithTx returns a new RoadmapStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) RoadmapStore
}
