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

// PostgresCollectionStore implements the store.CollectionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCollectionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCollectionStore creates a new PostgreSQL implementation of the
// CollectionStore interface. If logger is nil, a default logger will be used.
func NewPostgresCollectionStore(db store.DBTX, logger *slog.Logger) *PostgresCollectionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCollectionStore{
		db:     db,
		logger: logger.With(slog.String("component", "collection_store")),
	}
}

// Ensure PostgresCollectionStore implements store.CollectionStore interface
var _ store.CollectionStore = (*PostgresCollectionStore)(nil)

// Create implements store.CollectionStore.Create
// Returns store.ErrCollectionExists when the user already has a collection
// for the same normalized topic.
func (s *PostgresCollectionStore) Create(ctx context.Context, collection *domain.Collection) error {
	if err := collection.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	query := `
		INSERT INTO collections (id, user_id, title, topic, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		collection.ID,
		collection.UserID,
		collection.Title,
		collection.Topic,
		collection.CreatedAt,
	)
	if err != nil {
		s.logger.Debug("failed to insert collection",
			slog.String("collection_id", collection.ID.String()),
			slog.String("error", err.Error()))
		return mapUniqueViolation(err, store.ErrCollectionExists)
	}

	return nil
}

// GetByID implements store.CollectionStore.GetByID
// Returns store.ErrCollectionNotFound if the collection does not exist.
func (s *PostgresCollectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	query := `
		SELECT id, user_id, title, topic, created_at
		FROM collections
		WHERE id = $1`

	return s.scanCollection(s.db.QueryRowContext(ctx, query, id))
}

// GetByUserAndTopic implements store.CollectionStore.GetByUserAndTopic
// The topic must already be normalized by the caller.
// Returns store.ErrCollectionNotFound if no such collection exists.
func (s *PostgresCollectionStore) GetByUserAndTopic(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
) (*domain.Collection, error) {
	query := `
		SELECT id, user_id, title, topic, created_at
		FROM collections
		WHERE user_id = $1 AND topic = $2`

	return s.scanCollection(s.db.QueryRowContext(ctx, query, userID, topic))
}

// CreateItems implements store.CollectionStore.CreateItems
// It inserts the items one by one against the store's current handle; run it
// under WithTx inside RunInTransaction for atomicity.
func (s *PostgresCollectionStore) CreateItems(ctx context.Context, items []*domain.ContentItem) error {
	query := `
		INSERT INTO content_items (id, collection_id, kind, text_pt, text_en,
			image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		_, err := s.db.ExecContext(ctx, query,
			item.ID,
			item.CollectionID,
			string(item.Kind),
			item.TextPT,
			item.TextEN,
			item.ImageURL,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			s.logger.Debug("failed to insert content item",
				slog.String("item_id", item.ID.String()),
				slog.String("error", err.Error()))
			return MapError(err)
		}
	}

	return nil
}

// ListItems implements store.CollectionStore.ListItems
// Words sort before sentences; within a kind, insertion order is kept.
func (s *PostgresCollectionStore) ListItems(
	ctx context.Context,
	collectionID uuid.UUID,
) ([]*domain.ContentItem, error) {
	query := `
		SELECT id, collection_id, kind, text_pt, text_en, image_url,
			created_at, updated_at
		FROM content_items
		WHERE collection_id = $1
		ORDER BY CASE kind WHEN 'word' THEN 0 ELSE 1 END, created_at, id`

	rows, err := s.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// GetItemByTextEN implements store.CollectionStore.GetItemByTextEN
// Returns store.ErrContentItemNotFound if no item of the collection carries
// the given target-language text.
func (s *PostgresCollectionStore) GetItemByTextEN(
	ctx context.Context,
	collectionID uuid.UUID,
	textEN string,
) (*domain.ContentItem, error) {
	query := `
		SELECT id, collection_id, kind, text_pt, text_en, image_url,
			created_at, updated_at
		FROM content_items
		WHERE collection_id = $1 AND text_en = $2
		ORDER BY created_at, id
		LIMIT 1`

	row := s.db.QueryRowContext(ctx, query, collectionID, textEN)
	item, err := scanContentItem(row)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrContentItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// UpdateItemImageURL implements store.CollectionStore.UpdateItemImageURL
// Returns store.ErrContentItemNotFound if the item does not exist.
func (s *PostgresCollectionStore) UpdateItemImageURL(
	ctx context.Context,
	itemID uuid.UUID,
	url string,
) error {
	query := `
		UPDATE content_items
		SET image_url = $2, updated_at = now()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, itemID, url)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "content item"); err != nil {
		return fmt.Errorf("%w: %v", store.ErrContentItemNotFound, err)
	}
	return nil
}

// WithTx implements store.CollectionStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresCollectionStore) WithTx(tx *sql.Tx) store.CollectionStore {
	return &PostgresCollectionStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanCollection reads one collection row, translating sql.ErrNoRows into
// store.ErrCollectionNotFound.
func (s *PostgresCollectionStore) scanCollection(row *sql.Row) (*domain.Collection, error) {
	var collection domain.Collection

	err := row.Scan(
		&collection.ID,
		&collection.UserID,
		&collection.Title,
		&collection.Topic,
		&collection.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCollectionNotFound
		}
		return nil, MapError(err)
	}

	return &collection, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanContentItem reads one content-item row from either a Row or Rows.
func scanContentItem(row rowScanner) (*domain.ContentItem, error) {
	var item domain.ContentItem
	var kind string

	err := row.Scan(
		&item.ID,
		&item.CollectionID,
		&kind,
		&item.TextPT,
		&item.TextEN,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}

	item.Kind = domain.ContentKind(kind)
	return &item, nil
}
