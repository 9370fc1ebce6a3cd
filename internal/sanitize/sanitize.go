// Package sanitize recovers structured JSON payloads from noisy generative
// service replies. Providers wrap JSON in prose and markdown fences
// inconsistently, so extraction is a layered best-effort pipeline: fence
// stripping, boundary slicing, strict parsing, then a more aggressive pattern
// search over the original text. It never fabricates data; when every attempt
// fails the caller gets a ParseError and decides how to degrade.
package sanitize

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

const excerptLimit = 500

// ParseError reports that no structured payload could be recovered. Excerpt
// holds a truncated copy of the raw reply for diagnostics.
type ParseError struct {
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no structured payload recovered: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	fenceJSON    = regexp.MustCompile("```json\\s*")
	fenceAny     = regexp.MustCompile("```\\s*")
	backtickRuns = regexp.MustCompile("`{3,}")
	fenceLines   = regexp.MustCompile("(?m)^```.*$")
	arrayShape   = regexp.MustCompile(`\[[\s\S]*\]`)
	objectShape  = regexp.MustCompile(`\{[\s\S]*\}`)
	blankLines   = regexp.MustCompile(`\n\s*\n`)
)

// Array extracts a JSON array from raw reply text.
func Array(raw string) (json.RawMessage, error) {
	return extract(raw, '[', ']', arrayShape)
}

// Object extracts a JSON object from raw reply text.
func Object(raw string) (json.RawMessage, error) {
	return extract(raw, '{', '}', objectShape)
}

func extract(raw string, open, close byte, shape *regexp.Regexp) (json.RawMessage, error) {
	cleaned := stripFences(raw)
	candidate := sliceBoundaries(cleaned, open, close)

	parsed, err := tryParse(candidate, open)
	if err == nil {
		return parsed, nil
	}

	// Second, more aggressive pass over the original text: pattern-match the
	// bracketed shape, then strip every backtick and collapse blank lines.
	if match := shape.FindString(raw); match != "" {
		retry := strings.ReplaceAll(match, "`", "")
		retry = blankLines.ReplaceAllString(retry, "\n")
		if parsed, retryErr := tryParse(strings.TrimSpace(retry), open); retryErr == nil {
			return parsed, nil
		}
	}

	return nil, &ParseError{Excerpt: truncate(raw, excerptLimit), Err: err}
}

func stripFences(raw string) string {
	s := fenceJSON.ReplaceAllString(raw, "")
	s = fenceAny.ReplaceAllString(s, "")
	s = backtickRuns.ReplaceAllString(s, "")
	s = fenceLines.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func sliceBoundaries(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start != -1 && end != -1 && start < end {
		return s[start : end+1]
	}
	return s
}

func tryParse(candidate string, open byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return nil, errors.New("empty payload")
	}
	if trimmed[0] != open {
		return nil, fmt.Errorf("payload starts with %q, want %q", trimmed[0], open)
	}
	if !gjson.Valid(trimmed) {
		// Full decode only to surface a concrete error for diagnostics.
		var probe any
		if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
			return nil, err
		}
		return nil, errors.New("malformed payload")
	}
	return json.RawMessage(trimmed), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
