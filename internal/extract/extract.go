// Package extract locates and parses the JSON payload embedded in raw oracle
// text. The oracle is asked to reply with nothing but JSON, but being a
// generative model it sometimes wraps the payload in prose or markdown
// fences, so extraction is a deliberate two-phase pipeline: locate the span,
// then parse it. Each phase fails with its own classified error.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/pitchside/pitchside-cli/internal/model"
)

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	return strings.TrimSpace(text)
}

// locateSpan returns the slice of text between the first open delimiter and
// the last close delimiter, tolerating explanatory prose around the payload.
// Only a text with no opening delimiter at all counts as "no payload"; an
// opener without a closer is a truncated payload and is handed to the parser
// so the failure classifies as malformed, not missing.
func locateSpan(text string, open, close byte) (string, bool) {
	text = stripFences(text)
	if len(text) >= 2 && text[0] == open && text[len(text)-1] == close {
		return text, true
	}
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}
	if end := strings.LastIndexByte(text, close); end > start {
		return text[start : end+1], true
	}
	return text[start:], true
}

// Object isolates the JSON object span from raw oracle text.
func Object(text string) (string, error) {
	span, ok := locateSpan(text, '{', '}')
	if !ok {
		return "", noPayload(text)
	}
	return span, nil
}

// Array isolates the JSON array span from raw oracle text.
func Array(text string) (string, error) {
	span, ok := locateSpan(text, '[', ']')
	if !ok {
		return "", noPayload(text)
	}
	return span, nil
}

// ParseAnalysis extracts and parses a single analysis record from raw oracle
// text. The result is syntactically sound but not yet validated.
func ParseAnalysis(text string) (*RawRecord, error) {
	span, err := Object(text)
	if err != nil {
		return nil, err
	}

	var raw RawRecord
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, malformed(text, err)
	}
	return &raw, nil
}

// ParseFixtures extracts and parses a fixture list from raw oracle text.
// An empty array is a valid result: zero fixtures scheduled is an expected
// business outcome, distinct from a parse failure.
func ParseFixtures(text string) ([]model.Fixture, error) {
	span, err := Array(text)
	if err != nil {
		return nil, err
	}

	fixtures := []model.Fixture{}
	if err := json.Unmarshal([]byte(span), &fixtures); err != nil {
		return nil, malformed(text, err)
	}
	return fixtures, nil
}
