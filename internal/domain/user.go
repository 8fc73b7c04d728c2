package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel describes how far along a user is in their sign-language
// learning. "intermediated" is the historical spelling used by existing
// clients and must be kept as-is on the wire.
type ExperienceLevel string

// Possible experience levels.
const (
	ExperienceBeginner      ExperienceLevel = "beginner"
	ExperienceIntermediated ExperienceLevel = "intermediated"
	ExperienceAdvanced      ExperienceLevel = "advanced"
)

// LearningTimeMax is the sentinel for "60 minutes or more" per session.
const LearningTimeMax = 60

// Common validation errors
var (
	ErrEmptyUserID            = errors.New("user ID cannot be empty")
	ErrEmptyUserName          = errors.New("user name cannot be empty")
	ErrEmptyEmail             = errors.New("email cannot be empty")
	ErrInvalidAge             = errors.New("age must be a positive number")
	ErrInvalidExperienceLevel = errors.New("experience level must be beginner, intermediated or advanced")
	ErrInvalidLearningTime    = errors.New("learning time must be one of 10, 20, 30, 40, 50 or 60")
	ErrNegativeRoadmapLevel   = errors.New("roadmap level cannot be negative")
)

// User represents a registered learner (or their guardian) of the Sinalize
// application. Roadmap progress is advanced only through explicit updates.
type User struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	AvatarURL       string          `json:"image_url"`
	Age             int             `json:"age"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Interest        string          `json:"interest"`
	LearningTime    int             `json:"learning_time"`
	RoadmapLevel    int             `json:"roadmap_level"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewUser creates a new User with a fresh UUID and creation timestamps.
// Returns an error if validation fails.
func NewUser(
	name, email, avatarURL string,
	age int,
	level ExperienceLevel,
	interest string,
	learningTime int,
) (*User, error) {
	user := &User{
		ID:              uuid.New(),
		Name:            name,
		Email:           email,
		AvatarURL:       avatarURL,
		Age:             age,
		ExperienceLevel: level,
		Interest:        interest,
		LearningTime:    learningTime,
		RoadmapLevel:    0,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Age <= 0 {
		return ErrInvalidAge
	}

	if !isValidExperienceLevel(u.ExperienceLevel) {
		return ErrInvalidExperienceLevel
	}

	if !IsValidLearningTime(u.LearningTime) {
		return ErrInvalidLearningTime
	}

	if u.RoadmapLevel < 0 {
		return ErrNegativeRoadmapLevel
	}

	return nil
}

// AdvanceRoadmapLevel sets the user's roadmap progress level and refreshes
// the update timestamp. Returns an error for negative levels.
func (u *User) AdvanceRoadmapLevel(level int) error {
	if level < 0 {
		return ErrNegativeRoadmapLevel
	}

	u.RoadmapLevel = level
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// isValidExperienceLevel checks if the given level is a valid ExperienceLevel.
func isValidExperienceLevel(level ExperienceLevel) bool {
	switch level {
	case ExperienceBeginner, ExperienceIntermediated, ExperienceAdvanced:
		return true
	default:
		return false
	}
}

// IsValidLearningTime reports whether minutes is one of the discrete
// per-session durations the app offers. 60 stands for "60 or more".
func IsValidLearningTime(minutes int) bool {
	switch minutes {
	case 10, 20, 30, 40, 50, LearningTimeMax:
		return true
	default:
		return false
	}
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	if dotIndex == -1 || dotIndex == 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}
