package api

import (
	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/generation"
)

// RegisterUserRequest holds the data needed for user registration.
type RegisterUserRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ImageURL        string `json:"image_url"`
	Age             int    `json:"age" validate:"required,gt=0"`
	ExperienceLevel string `json:"experience_level" validate:"required,oneof=beginner intermediated advanced"`
	Interest        string `json:"interest"`
	LearningTime    int    `json:"learning_time" validate:"required,oneof=10 20 30 40 50 60"`
}

// RegisterUserResponse is returned after a successful registration. The token
// lets the client start calling authenticated endpoints immediately.
type RegisterUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

// UserResponse is the public projection of a user record.
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ImageURL        string    `json:"image_url,omitempty"`
	Age             int       `json:"age"`
	ExperienceLevel string    `json:"experience_level"`
	Interest        string    `json:"interest,omitempty"`
	LearningTime    int       `json:"learning_time"`
	RoadmapLevel    int       `json:"roadmap_level"`
}

// CheckUserRequest asks whether an account exists for the given email.
type CheckUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CheckUserResponse reports the lookup result. ID is only set when the user
// exists.
type CheckUserResponse struct {
	Exists bool       `json:"exists"`
	ID     *uuid.UUID `json:"id,omitempty"`
}

// UpdateRoadmapRequest sets the user's roadmap progression level.
type UpdateRoadmapRequest struct {
	RoadmapLevel *int `json:"roadmap_level" validate:"required,gte=0"`
}

// GenerateContentRequest asks for a word and sentence collection on a topic.
type GenerateContentRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Topic  string    `json:"topic" validate:"required"`
}

// ContentItemResponse is one generated word or sentence pair.
type ContentItemResponse struct {
	ID       uuid.UUID `json:"id"`
	TextPT   string    `json:"text_pt"`
	TextEN   string    `json:"text_en"`
	ImageURL string    `json:"image_url,omitempty"`
}

// ContentResponse carries a collection with its items split by kind.
// IsExisting is true when the collection was served from storage rather
// than freshly generated.
type ContentResponse struct {
	CollectionID uuid.UUID             `json:"collection_id"`
	Title        string                `json:"title"`
	Topic        string                `json:"topic"`
	IsExisting   bool                  `json:"is_existing"`
	Words        []ContentItemResponse `json:"words"`
	Sentences    []ContentItemResponse `json:"sentences"`
}

// GenerateImageRequest asks for the illustration of a single content item,
// identified by its collection and English text.
type GenerateImageRequest struct {
	CollectionID uuid.UUID `json:"collection_id" validate:"required"`
	TextEN       string    `json:"text_en" validate:"required"`
}

// GenerateImageResponse returns the (possibly cached) illustration URL.
type GenerateImageResponse struct {
	URL string `json:"url"`
}

// RoadmapRequest asks for a personalized study roadmap. Interest, when set,
// overrides the interest stored on the user profile.
type RoadmapRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Interest string    `json:"interest"`
}

// RoadmapResponse carries one generated roadmap.
type RoadmapResponse struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Topics []string  `json:"topics"`
}

// RoadmapTopicsResponse flattens every stored roadmap of a user into a single
// topic list, oldest roadmap first.
type RoadmapTopicsResponse struct {
	Topics []string `json:"topics"`
}

// DeleteRoadmapsResponse reports how many roadmaps were removed.
type DeleteRoadmapsResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// ChatRequest carries the running conversation, oldest message first.
type ChatRequest struct {
	Messages []generation.Message `json:"messages" validate:"required,min=1,dive"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// IntroductionRequest asks for the spoken introduction of a learning phase.
type IntroductionRequest struct {
	Tema string `json:"tema" validate:"required"`
	Fase string `json:"fase" validate:"required"`
}

// IntroductionResponse carries the generated introduction text.
type IntroductionResponse struct {
	Text string `json:"text"`
}
