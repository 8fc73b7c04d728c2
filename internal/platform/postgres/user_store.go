package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It validates the user and inserts it. Returns store.ErrEmailExists when
// the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	query := `
		INSERT INTO users (id, name, email, avatar_url, age, experience_level,
			interest, learning_time, roadmap_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.AvatarURL,
		user.Age,
		string(user.ExperienceLevel),
		user.Interest,
		user.LearningTime,
		user.RoadmapLevel,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		s.logger.Debug("failed to insert user",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return mapUniqueViolation(err, store.ErrEmailExists)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, name, email, avatar_url, age, experience_level,
			interest, learning_time, roadmap_level, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, avatar_url, age, experience_level,
			interest, learning_time, roadmap_level, created_at, updated_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// UpdateRoadmapLevel implements store.UserStore.UpdateRoadmapLevel
// It sets the level, refreshes updated_at and returns the updated user.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) UpdateRoadmapLevel(
	ctx context.Context,
	id uuid.UUID,
	level int,
) (*domain.User, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, domain.ErrNegativeRoadmapLevel)
	}

	query := `
		UPDATE users
		SET roadmap_level = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, avatar_url, age, experience_level,
			interest, learning_time, roadmap_level, created_at, updated_at`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id, level))
	if err != nil {
		return nil, err
	}
	return user, nil
}

// WithTx implements store.UserStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanUser reads one user row, translating sql.ErrNoRows into
// store.ErrUserNotFound.
func (s *PostgresUserStore) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var level string

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.AvatarURL,
		&user.Age,
		&level,
		&user.Interest,
		&user.LearningTime,
		&user.RoadmapLevel,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}

	user.ExperienceLevel = domain.ExperienceLevel(level)
	return &user, nil
}
