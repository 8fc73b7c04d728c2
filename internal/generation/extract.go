package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON object from a model's free-text completion and
// unmarshals it into v.
//
// The recovery heuristic is deliberately the two-index slice: the substring
// between the first '{' and the last '}' in the text. It is lenient and
// lossy by contract — it does not scan for balanced braces, so a completion
// containing several JSON fragments or stray braces in prose can yield a
// slice that fails to parse, or a well-formed but wrong object. Callers rely
// on exactly this behavior; do not replace it with a proper JSON scanner.
//
// Returns ErrNoJSONFound when no brace pair exists, when the first '{'
// follows the last '}', or when the slice does not parse. Parse failures
// never panic.
func ExtractJSON(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || start >= end {
		return ErrNoJSONFound
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", ErrNoJSONFound, err)
	}

	return nil
}
