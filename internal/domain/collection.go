package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Collection
var (
	ErrEmptyCollectionID     = errors.New("collection ID cannot be empty")
	ErrEmptyCollectionUserID = errors.New("collection user ID cannot be empty")
	ErrEmptyCollectionTitle  = errors.New("collection title cannot be empty")
	ErrEmptyCollectionTopic  = errors.New("collection topic cannot be empty")
)

// Collection is a named bundle of generated learning content scoped to one
// user and one topic. Topic is stored normalized and acts as the natural
// dedup key: at most one collection exists per (user, topic).
type Collection struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTopic lower-cases and trims a topic string. All collection
// lookups and inserts go through this so that "Animais" and " animais "
// resolve to the same collection.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// NewCollection creates a new Collection for the given user and topic.
// The topic is normalized before storage. Returns an error if validation fails.
func NewCollection(userID uuid.UUID, title, topic string) (*Collection, error) {
	collection := &Collection{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Topic:     NormalizeTopic(topic),
		CreatedAt: time.Now().UTC(),
	}

	if err := collection.Validate(); err != nil {
		return nil, err
	}

	return collection, nil
}

// Validate checks if the Collection has valid data.
// Returns an error if any field fails validation.
func (c *Collection) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCollectionID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCollectionUserID
	}

	if c.Title == "" {
		return ErrEmptyCollectionTitle
	}

	if c.Topic == "" {
		return ErrEmptyCollectionTopic
	}

	return nil
}
