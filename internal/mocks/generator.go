package mocks

import (
	"context"
	"sync"

	"github.com/sinalize/sinalize-api/internal/generation"
)

// MockTextGenerator implements generation.TextGenerator for testing.
type MockTextGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior.
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values used when GenerateFn is nil.
	Text string
	Err  error

	// Call tracking for verification.
	GenerateCalls struct {
		mu      sync.Mutex
		Count   int
		Prompts []string
	}
}

// Generate implements the generation.TextGenerator interface.
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Text, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockTextGenerator) CallCount() int {
	m.GenerateCalls.mu.Lock()
	defer m.GenerateCalls.mu.Unlock()
	return m.GenerateCalls.Count
}

// MockChatModel implements generation.ChatModel for testing.
type MockChatModel struct {
	// ChatFn allows test cases to mock the Chat behavior.
	ChatFn func(ctx context.Context, messages []generation.Message) (string, error)

	// Default response values used when ChatFn is nil.
	Reply string
	Err   error

	// Call tracking for verification.
	ChatCalls struct {
		mu        sync.Mutex
		Count     int
		Histories [][]generation.Message
	}
}

// Chat implements the generation.ChatModel interface.
func (m *MockChatModel) Chat(ctx context.Context, messages []generation.Message) (string, error) {
	m.ChatCalls.mu.Lock()
	m.ChatCalls.Count++
	m.ChatCalls.Histories = append(m.ChatCalls.Histories, messages)
	m.ChatCalls.mu.Unlock()

	if m.ChatFn != nil {
		return m.ChatFn(ctx, messages)
	}
	return m.Reply, m.Err
}

// MockImageClient implements generation.ImageClient for testing.
type MockImageClient struct {
	// GenerateImageFn allows test cases to mock the GenerateImage behavior.
	GenerateImageFn func(ctx context.Context, prompt string) (string, error)

	// Default response values used when GenerateImageFn is nil.
	URL string
	Err error

	// Call tracking for verification.
	GenerateImageCalls struct {
		mu      sync.Mutex
		Count   int
		Prompts []string
	}
}

// GenerateImage implements the generation.ImageClient interface.
func (m *MockImageClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	m.GenerateImageCalls.mu.Lock()
	m.GenerateImageCalls.Count++
	m.GenerateImageCalls.Prompts = append(m.GenerateImageCalls.Prompts, prompt)
	m.GenerateImageCalls.mu.Unlock()

	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return m.URL, m.Err
}

// CallCount returns how many times GenerateImage was called.
func (m *MockImageClient) CallCount() int {
	m.GenerateImageCalls.mu.Lock()
	defer m.GenerateImageCalls.mu.Unlock()
	return m.GenerateImageCalls.Count
}
