package generation

import "context"

// TextGenerator is the abstraction over the text model for single-prompt
// completions. Implementations must be safe for concurrent use.
type TextGenerator interface {
	// Generate sends one prompt to the text model and returns its raw
	// completion text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatModel is the abstraction over the text model for multi-turn chat.
type ChatModel interface {
	// Chat sends a message history to the model and returns the assistant
	// reply.
	Chat(ctx context.Context, messages []Message) (string, error)
}

// ImageClient is the abstraction over the image-generation provider.
// GenerateImage returns the URL of the generated illustration.
// Implementations return ErrRateLimited when the provider throttled the
// request so the fetcher can retry it.
type ImageClient interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
