package advisor

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// the single failure shape for the AI path: call errors, timeouts and
// unparseable output all surface as this, so feature handlers only branch
// on succeeded vs failed
var ErrMalformedResponse = errors.New("malformed AI response")

// extracts the first well-formed JSON object from free-form model output.
// models wrap JSON in prose or markdown fences despite instructions, so
// this scans for the first balanced {...} block; if that block doesn't
// parse, jsonrepair gets one chance to fix it (truncated strings, trailing
// commas) before the hard failure
func ExtractJSONObject(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return nil, ErrMalformedResponse
	}

	candidate := balancedObject(text[start:])
	if candidate == "" {
		// unbalanced braces - let jsonrepair try the raw tail
		candidate = text[start:]
	}

	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err == nil && json.Valid([]byte(repaired)) {
		return json.RawMessage(repaired), nil
	}

	return nil, ErrMalformedResponse
}

// returns the shortest prefix of s that forms a balanced JSON object,
// tracking string literals and escapes. empty string if braces never
// balance
func balancedObject(s string) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1]
				}
			}
		}
	}

	return ""
}
