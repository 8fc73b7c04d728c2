package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/sinalize/sinalize-api/internal/domain"
)

// CollectionStore defines the interface for collection and content-item
// persistence. Content items are exclusively owned by their collection.
type CollectionStore interface {
	// Create saves a new collection.
	// Returns ErrCollectionExists if the user already has a collection for
	// the normalized topic.
	Create(ctx context.Context, collection *domain.Collection) error

	// GetByID retrieves a collection by its unique ID.
	// Returns ErrCollectionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)

	// GetByUserAndTopic retrieves the user's collection for a normalized topic.
	// Returns ErrCollectionNotFound if it does not exist. Callers must pass
	// the topic through domain.NormalizeTopic first.
	GetByUserAndTopic(ctx context.Context, userID uuid.UUID, topic string) (*domain.Collection, error)

	// CreateItems saves a batch of content items.
	// Run it inside store.RunInTransaction via WithTx so a generation pass
	// persists atomically.
	CreateItems(ctx context.Context, items []*domain.ContentItem) error

	// ListItems retrieves all content items of a collection, words first,
	// then sentences, each in insertion order.
	ListItems(ctx context.Context, collectionID uuid.UUID) ([]*domain.ContentItem, error)

	// GetItemByTextEN retrieves one content item of a collection by its
	// target-language text. Returns ErrContentItemNotFound if absent.
	GetItemByTextEN(ctx context.Context, collectionID uuid.UUID, textEN string) (*domain.ContentItem, error)

	// UpdateItemImageURL records a generated illustration URL on an item.
	// Returns ErrContentItemNotFound if the item does not exist.
	UpdateItemImageURL(ctx context.Context, itemID uuid.UUID, url string) error

	// WithTx returns a new CollectionStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) CollectionStore
}
