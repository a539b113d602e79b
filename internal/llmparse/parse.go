// Package llmparse extracts JSON values from generative-model responses.
// Models frequently wrap JSON output in markdown code fences; Parse strips
// them before decoding. Parsing is pure and idempotent: already-clean JSON
// decodes to the same value as its fenced form.
package llmparse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports model output that is not valid JSON after fence
// stripping. It carries the cleaned text for logging.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model JSON output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Strip removes an optional leading ```json or ``` marker and a trailing
// ``` from the text.
func Strip(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Parse strips code fences and decodes the remainder as JSON.
func Parse(raw string) (json.RawMessage, error) {
	cleaned := Strip(raw)

	var value json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, &ParseError{Raw: cleaned, Err: err}
	}
	return value, nil
}

// Decode strips code fences and unmarshals the remainder into target.
func Decode(raw string, target any) error {
	cleaned := Strip(raw)
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &ParseError{Raw: cleaned, Err: err}
	}
	return nil
}

// StringList parses model output expected to be a JSON array of strings.
// A valid JSON value of any other shape is a ParseError too: the caller
// asked for a title list and got something else.
func StringList(raw string) ([]string, error) {
	cleaned := Strip(raw)

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
		return nil, &ParseError{Raw: cleaned, Err: err}
	}
	return list, nil
}
