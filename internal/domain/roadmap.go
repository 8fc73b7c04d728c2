package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RoadmapKind indicates whether a roadmap was generated for the learner
// themselves or for a guardian mediating the learning.
type RoadmapKind string

// Possible roadmap kinds.
const (
	RoadmapKindStudent RoadmapKind = "student"
	RoadmapKindParent  RoadmapKind = "parent"
)

// Common validation errors for Roadmap
var (
	ErrEmptyRoadmapID     = errors.New("roadmap ID cannot be empty")
	ErrEmptyRoadmapUserID = errors.New("roadmap user ID cannot be empty")
	ErrInvalidRoadmapKind = errors.New("roadmap kind must be student or parent")
	ErrEmptyRoadmapTopics = errors.New("roadmap must contain at least one topic")
)

// Roadmap is an ordered sequence of short study topics generated for a user.
// Unlike collections, multiple roadmaps may exist per user and no dedup
// invariant applies.
type Roadmap struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Kind      RoadmapKind `json:"kind"`
	Topics    []string    `json:"topics"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewRoadmap creates a new Roadmap with the given kind and topics.
// Returns an error if validation fails.
func NewRoadmap(userID uuid.UUID, kind RoadmapKind, topics []string) (*Roadmap, error) {
	roadmap := &Roadmap{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Topics:    topics,
		CreatedAt: time.Now().UTC(),
	}

	if err := roadmap.Validate(); err != nil {
		return nil, err
	}

	return roadmap, nil
}

// Validate checks if the Roadmap has valid data.
// Returns an error if any field fails validation.
func (r *Roadmap) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoadmapID
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyRoadmapUserID
	}

	if !isValidRoadmapKind(r.Kind) {
		return ErrInvalidRoadmapKind
	}

	if len(r.Topics) == 0 {
		return ErrEmptyRoadmapTopics
	}

	return nil
}

// isValidRoadmapKind checks if the given kind is a valid RoadmapKind.
func isValidRoadmapKind(kind RoadmapKind) bool {
	switch kind {
	case RoadmapKindStudent, RoadmapKindParent:
		return true
	default:
		return false
	}
}
