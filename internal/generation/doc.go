// Package generation defines the interfaces and helpers for AI content
// generation: the text-model and chat-model abstractions, the prompt
// builders, the brace-delimited JSON extractor for free-text model output,
// and the bounded-concurrency image fetcher. Concrete provider clients live
// in internal/platform/gemini and internal/platform/aimlapi.
package generation
