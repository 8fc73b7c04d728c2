// Package service provides application-level services orchestrating content
// generation, roadmaps, chat and introductions.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is; the API layer maps them to HTTP status
// codes.
var (
	// ErrUnknownPhase indicates an introduction was requested for a phase
	// outside palavras/frases/jogos. API layer maps this to 400.
	ErrUnknownPhase = errors.New("unknown introduction phase")

	// ErrEmptyChatHistory indicates a chat request carried no messages.
	// API layer maps this to 400.
	ErrEmptyChatHistory = errors.New("chat history cannot be empty")
)
