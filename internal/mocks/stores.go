package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/domain"
	"github.com/sinalize/sinalize-api/internal/store"
)

// MockUserStore implements store.UserStore backed by an in-memory map.
// Function fields override individual operations when set.
type MockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	CreateFn             func(ctx context.Context, user *domain.User) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn         func(ctx context.Context, email string) (*domain.User, error)
	UpdateRoadmapLevelFn func(ctx context.Context, id uuid.UUID, level int) (*domain.User, error)
}

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Seed adds a user directly to the in-memory state.
func (m *MockUserStore) Seed(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

// Create implements store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	m.users[user.ID] = user
	return nil
}

// GetByID implements store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// UpdateRoadmapLevel implements store.UserStore.UpdateRoadmapLevel
func (m *MockUserStore) UpdateRoadmapLevel(
	ctx context.Context,
	id uuid.UUID,
	level int,
) (*domain.User, error) {
	if m.UpdateRoadmapLevelFn != nil {
		return m.UpdateRoadmapLevelFn(ctx, id, level)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if err := user.AdvanceRoadmapLevel(level); err != nil {
		return nil, err
	}
	return user, nil
}

// WithTx implements store.UserStore.WithTx
// The in-memory mock has no transactional state, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// MockCollectionStore implements store.CollectionStore backed by in-memory
// maps. Function fields override individual operations when set.
type MockCollectionStore struct {
	mu          sync.Mutex
	collections map[uuid.UUID]*domain.Collection
	items       map[uuid.UUID][]*domain.ContentItem

	CreateFn             func(ctx context.Context, collection *domain.Collection) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByUserAndTopicFn  func(ctx context.Context, userID uuid.UUID, topic string) (*domain.Collection, error)
	CreateItemsFn        func(ctx context.Context, items []*domain.ContentItem) error
	ListItemsFn          func(ctx context.Context, collectionID uuid.UUID) ([]*domain.ContentItem, error)
	GetItemByTextENFn    func(ctx context.Context, collectionID uuid.UUID, textEN string) (*domain.ContentItem, error)
	UpdateItemImageURLFn func(ctx context.Context, itemID uuid.UUID, url string) error
}

// NewMockCollectionStore creates an empty in-memory collection store.
func NewMockCollectionStore() *MockCollectionStore {
	return &MockCollectionStore{
		collections: make(map[uuid.UUID]*domain.Collection),
		items:       make(map[uuid.UUID][]*domain.ContentItem),
	}
}

var _ store.CollectionStore = (*MockCollectionStore)(nil)

// Seed adds a collection and its items directly to the in-memory state.
func (m *MockCollectionStore) Seed(collection *domain.Collection, items ...*domain.ContentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection.ID] = collection
	m.items[collection.ID] = append(m.items[collection.ID], items...)
}

// Create implements store.CollectionStore.Create
func (m *MockCollectionStore) Create(ctx context.Context, collection *domain.Collection) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, collection)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.collections {
		if existing.UserID == collection.UserID && existing.Topic == collection.Topic {
			return store.ErrCollectionExists
		}
	}
	m.collections[collection.ID] = collection
	return nil
}

// GetByID implements store.CollectionStore.GetByID
func (m *MockCollectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	collection, ok := m.collections[id]
	if !ok {
		return nil, store.ErrCollectionNotFound
	}
	return collection, nil
}

// GetByUserAndTopic implements store.CollectionStore.GetByUserAndTopic
func (m *MockCollectionStore) GetByUserAndTopic(
	ctx context.Context,
	userID uuid.UUID,
	topic string,
) (*domain.Collection, error) {
	if m.GetByUserAndTopicFn != nil {
		return m.GetByUserAndTopicFn(ctx, userID, topic)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, collection := range m.collections {
		if collection.UserID == userID && collection.Topic == topic {
			return collection, nil
		}
	}
	return nil, store.ErrCollectionNotFound
}

// CreateItems implements store.CollectionStore.CreateItems
func (m *MockCollectionStore) CreateItems(ctx context.Context, items []*domain.ContentItem) error {
	if m.CreateItemsFn != nil {
		return m.CreateItemsFn(ctx, items)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range items {
		m.items[item.CollectionID] = append(m.items[item.CollectionID], item)
	}
	return nil
}

// ListItems implements store.CollectionStore.ListItems
func (m *MockCollectionStore) ListItems(
	ctx context.Context,
	collectionID uuid.UUID,
) ([]*domain.ContentItem, error) {
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx, collectionID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.ContentItem(nil), m.items[collectionID]...), nil
}

// GetItemByTextEN implements store.CollectionStore.GetItemByTextEN
func (m *MockCollectionStore) GetItemByTextEN(
	ctx context.Context,
	collectionID uuid.UUID,
	textEN string,
) (*domain.ContentItem, error) {
	if m.GetItemByTextENFn != nil {
		return m.GetItemByTextENFn(ctx, collectionID, textEN)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items[collectionID] {
		if item.TextEN == textEN {
			return item, nil
		}
	}
	return nil, store.ErrContentItemNotFound
}

// UpdateItemImageURL implements store.CollectionStore.UpdateItemImageURL
func (m *MockCollectionStore) UpdateItemImageURL(
	ctx context.Context,
	itemID uuid.UUID,
	url string,
) error {
	if m.UpdateItemImageURLFn != nil {
		return m.UpdateItemImageURLFn(ctx, itemID, url)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, items := range m.items {
		for _, item := range items {
			if item.ID == itemID {
				item.SetImageURL(url)
				return nil
			}
		}
	}
	return store.ErrContentItemNotFound
}

// WithTx implements store.CollectionStore.WithTx
func (m *MockCollectionStore) WithTx(tx *sql.Tx) store.CollectionStore { return m }

// MockRoadmapStore implements store.RoadmapStore backed by an in-memory
// slice. Function fields override individual operations when set.
type MockRoadmapStore struct {
	mu       sync.Mutex
	roadmaps []*domain.Roadmap

	CreateFn       func(ctx context.Context, roadmap *domain.Roadmap) error
	ListByUserFn   func(ctx context.Context, userID uuid.UUID) ([]*domain.Roadmap, error)
	DeleteByUserFn func(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NewMockRoadmapStore creates an empty in-memory roadmap store.
func NewMockRoadmapStore() *MockRoadmapStore {
	return &MockRoadmapStore{}
}

var _ store.RoadmapStore = (*MockRoadmapStore)(nil)

// Create implements store.RoadmapStore.Create
func (m *MockRoadmapStore) Create(ctx context.Context, roadmap *domain.Roadmap) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, roadmap)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.roadmaps = append(m.roadmaps, roadmap)
	return nil
}

// ListByUser implements store.RoadmapStore.ListByUser
func (m *MockRoadmapStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Roadmap, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.Roadmap, 0)
	for _, roadmap := range m.roadmaps {
		if roadmap.UserID == userID {
			result = append(result, roadmap)
		}
	}
	return result, nil
}

// DeleteByUser implements store.RoadmapStore.DeleteByUser
func (m *MockRoadmapStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.DeleteByUserFn != nil {
		return m.DeleteByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.roadmaps[:0]
	var deleted int64
	for _, roadmap := range m.roadmaps {
		if roadmap.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, roadmap)
	}
	m.roadmaps = kept
	return deleted, nil
}

// WithTx implements store.RoadmapStore.WithTx
func (m *MockRoadmapStore) WithTx(tx *sql.Tx) store.RoadmapStore { return m }
