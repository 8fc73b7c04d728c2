package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentKind distinguishes generated words from generated sentences.
type ContentKind string

// Possible content kinds.
const (
	ContentKindWord     ContentKind = "word"
	ContentKindSentence ContentKind = "sentence"
)

// MaxItemsPerKind is how many words and how many sentences are retained
// per generation pass.
const MaxItemsPerKind = 5

// Common validation errors for ContentItem
var (
	ErrEmptyContentItemID    = errors.New("content item ID cannot be empty")
	ErrEmptyItemCollectionID = errors.New("content item collection ID cannot be empty")
	ErrInvalidContentKind    = errors.New("content kind must be word or sentence")
	ErrEmptyContentText      = errors.New("content item requires text in both languages")
)

// ContentItem is one generated word or sentence belonging to exactly one
// collection. Text is bilingual (Portuguese source, English target); the
// English text doubles as the image-generation prompt, so ImageURL stays
// empty until an illustration has been generated for it.
type ContentItem struct {
	ID           uuid.UUID   `json:"id"`
	CollectionID uuid.UUID   `json:"collection_id"`
	Kind         ContentKind `json:"kind"`
	TextPT       string      `json:"text_pt"`
	TextEN       string      `json:"text_en"`
	ImageURL     string      `json:"image_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewContentItem creates a new ContentItem under the given collection.
// Returns an error if validation fails.
func NewContentItem(
	collectionID uuid.UUID,
	kind ContentKind,
	textPT, textEN string,
) (*ContentItem, error) {
	item := &ContentItem{
		ID:           uuid.New(),
		CollectionID: collectionID,
		Kind:         kind,
		TextPT:       textPT,
		TextEN:       textEN,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the ContentItem has valid data.
// Returns an error if any field fails validation.
func (i *ContentItem) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyContentItemID
	}

	if i.CollectionID == uuid.Nil {
		return ErrEmptyItemCollectionID
	}

	if !isValidContentKind(i.Kind) {
		return ErrInvalidContentKind
	}

	if i.TextPT == "" || i.TextEN == "" {
		return ErrEmptyContentText
	}

	return nil
}

// SetImageURL records the generated illustration URL and refreshes the
// update timestamp.
func (i *ContentItem) SetImageURL(url string) {
	i.ImageURL = url
	i.UpdatedAt = time.Now().UTC()
}

// isValidContentKind checks if the given kind is a valid ContentKind.
func isValidContentKind(kind ContentKind) bool {
	switch kind {
	case ContentKindWord, ContentKindSentence:
		return true
	default:
		return false
	}
}
