package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser(t *testing.T) *User {
	t.Helper()
	user, err := NewUser("Ana", "ana@example.com", "https://cdn.example.com/a.png",
		8, ExperienceBeginner, "animais", 30)
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := validUser(t)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, 0, user.RoadmapLevel)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr error
	}{
		{
			name:    "valid user",
			mutate:  func(u *User) {},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(u *User) { u.Name = "" },
			wantErr: ErrEmptyUserName,
		},
		{
			name:    "empty email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			mutate:  func(u *User) { u.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "zero age",
			mutate:  func(u *User) { u.Age = 0 },
			wantErr: ErrInvalidAge,
		},
		{
			name:    "unknown experience level",
			mutate:  func(u *User) { u.ExperienceLevel = "expert" },
			wantErr: ErrInvalidExperienceLevel,
		},
		{
			name:    "learning time above the sentinel",
			mutate:  func(u *User) { u.LearningTime = 70 },
			wantErr: ErrInvalidLearningTime,
		},
		{
			name:    "learning time not on the grid",
			mutate:  func(u *User) { u.LearningTime = 15 },
			wantErr: ErrInvalidLearningTime,
		},
		{
			name:    "learning time at the sentinel",
			mutate:  func(u *User) { u.LearningTime = 60 },
			wantErr: nil,
		},
		{
			name:    "negative roadmap level",
			mutate:  func(u *User) { u.RoadmapLevel = -1 },
			wantErr: ErrNegativeRoadmapLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser(t)
			tt.mutate(user)

			err := user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAdvanceRoadmapLevel(t *testing.T) {
	t.Parallel()

	user := validUser(t)

	require.NoError(t, user.AdvanceRoadmapLevel(3))
	assert.Equal(t, 3, user.RoadmapLevel)

	assert.ErrorIs(t, user.AdvanceRoadmapLevel(-2), ErrNegativeRoadmapLevel)
	assert.Equal(t, 3, user.RoadmapLevel, "failed update must not change the level")
}

func TestIsValidLearningTime(t *testing.T) {
	t.Parallel()

	for _, minutes := range []int{10, 20, 30, 40, 50, 60} {
		assert.True(t, IsValidLearningTime(minutes), "minutes=%d", minutes)
	}
	for _, minutes := range []int{0, 5, 15, 61, 70, -10} {
		assert.False(t, IsValidLearningTime(minutes), "minutes=%d", minutes)
	}
}
