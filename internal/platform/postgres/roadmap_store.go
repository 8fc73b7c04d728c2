package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/store"
)

// PostgresRoadmapStore implements the store.RoadmapStore interface
// using a PostgreSQL database as the storage backend. Topics are stored as a
// jsonb array so the ordered list round-trips without a join table.
type PostgresRoadmapStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRoadmapStore creates a new PostgreSQL implementation of the
// RoadmapStore interface. If logger is nil, a default logger will be used.
func NewPostgresRoadmapStore(db store.DBTX, logger *slog.Logger) *PostgresRoadmapStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRoadmapStore{
		db:     db,
		logger: logger.With(slog.String("component", "roadmap_store")),
	}
}

// Ensure PostgresRoadmapStore implements store.RoadmapStore interface
var _ store.RoadmapStore = (*PostgresRoadmapStore)(nil)

// Create implements store.RoadmapStore.Create
func (s *PostgresRoadmapStore) Create(ctx context.Context, roadmap *domain.Roadmap) error {
	if err := roadmap.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	topics, err := json.Marshal(roadmap.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}

	query := `
		INSERT INTO roadmaps (id, user_id, kind, topics, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.db.ExecContext(ctx, query,
		roadmap.ID,
		roadmap.UserID,
		string(roadmap.Kind),
		topics,
		roadmap.CreatedAt,
	)
	if err != nil {
		s.logger.Debug("failed to insert roadmap",
			slog.String("roadmap_id", roadmap.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// ListByUser implements store.RoadmapStore.ListByUser
// Roadmaps come back oldest first; a user without roadmaps gets an empty
// slice, not an error.
func (s *PostgresRoadmapStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Roadmap, error) {
	query := `
		SELECT id, user_id, kind, topics, created_at
		FROM roadmaps
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	roadmaps := make([]*domain.Roadmap, 0)
	for rows.Next() {
		var roadmap domain.Roadmap
		var kind string
		var topics []byte

		err := rows.Scan(
			&roadmap.ID,
			&roadmap.UserID,
			&kind,
			&topics,
			&roadmap.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}

		if err := json.Unmarshal(topics, &roadmap.Topics); err != nil {
			return nil, fmt.Errorf("unmarshal topics for roadmap %s: %w", roadmap.ID, err)
		}

		roadmap.Kind = domain.RoadmapKind(kind)
		roadmaps = append(roadmaps, &roadmap)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return roadmaps, nil
}

// DeleteByUser implements store.RoadmapStore.DeleteByUser
// Deleting zero roadmaps is not an error; the count lets callers report it.
func (s *PostgresRoadmapStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM roadmaps WHERE user_id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, MapError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// WithTx implements store.RoadmapStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresRoadmapStore) WithTx(tx *sql.Tx) store.RoadmapStore {
	return &PostgresRoadmapStore{
		db:     tx,
		logger: s.logger,
	}
}
