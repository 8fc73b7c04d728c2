package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		topic string
		want  string
	}{
		{"already normalized", "animais", "animais"},
		{"upper case", "Animais", "animais"},
		{"surrounding whitespace", "  Animais \t", "animais"},
		{"mixed case multi word", " Cômodos da Casa ", "cômodos da casa"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTopic(tt.topic))
		})
	}
}

func TestNewCollection(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collection, err := NewCollection(userID, "Coleção de Animais", "  Animais ")
	require.NoError(t, err)

	assert.Equal(t, "animais", collection.Topic, "topic must be stored normalized")
	assert.Equal(t, userID, collection.UserID)
	assert.NotEqual(t, uuid.Nil, collection.ID)
}

func TestCollectionValidate(t *testing.T) {
	t.Parallel()

	_, err := NewCollection(uuid.Nil, "title", "topic")
	assert.ErrorIs(t, err, ErrEmptyCollectionUserID)

	_, err = NewCollection(uuid.New(), "", "topic")
	assert.ErrorIs(t, err, ErrEmptyCollectionTitle)

	_, err = NewCollection(uuid.New(), "title", "   ")
	assert.ErrorIs(t, err, ErrEmptyCollectionTopic)
}

func TestNewContentItem(t *testing.T) {
	t.Parallel()

	collectionID := uuid.New()

	item, err := NewContentItem(collectionID, ContentKindWord, "cachorro", "dog")
	require.NoError(t, err)
	assert.Empty(t, item.ImageURL, "new items start without an illustration")

	_, err = NewContentItem(collectionID, "picture", "a", "b")
	assert.ErrorIs(t, err, ErrInvalidContentKind)

	_, err = NewContentItem(collectionID, ContentKindSentence, "", "red fridge")
	assert.ErrorIs(t, err, ErrEmptyContentText)
}

func TestNewRoadmap(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	roadmap, err := NewRoadmap(userID, RoadmapKindStudent, []string{"animais", "cores"})
	require.NoError(t, err)
	assert.Equal(t, []string{"animais", "cores"}, roadmap.Topics)

	_, err = NewRoadmap(userID, "grandparent", []string{"animais"})
	assert.ErrorIs(t, err, ErrInvalidRoadmapKind)

	_, err = NewRoadmap(userID, RoadmapKindParent, nil)
	assert.ErrorIs(t, err, ErrEmptyRoadmapTopics)
}
