package problemgen

import (
	"fmt"
)

// ParseError indicates the model output did not contain a parseable
// problem object.
type ParseError struct {
	Raw string // the raw model output, for debugging
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractObject returns the first balanced brace-delimited substring of s.
// Models often wrap the requested JSON object in explanatory prose or
// markdown fences; this finds the object wherever it starts. Braces inside
// JSON strings do not count toward balance. Returns an error when s
// contains no opening brace or the first object never closes.
func ExtractObject(s string) (string, error) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start = i
			break
		}
	}
	if start == -1 {
		return "", fmt.Errorf("no JSON object found")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object")
}
