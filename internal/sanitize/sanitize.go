// Package sanitize strips incidental wrapper text from model completions
// before structural parsing.
package sanitize

import "strings"

// Clean recovers a parseable JSON payload from a raw model completion.
// It strips markdown code fences (with or without a language tag) and any
// surrounding prose, then slices to the outermost bracket pair, preferring
// an array span over an object span.
//
// Span selection uses first-'['/last-']' (first-'{'/last-'}'), which is
// correct for a single top-level JSON value and can mis-slice when a
// completion carries multiple sibling top-level values. If no bracket pair
// is present the trimmed input is returned unchanged and decoding fails
// downstream, which is the intended failure signal.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = text[3:]
		// Drop a language tag such as "json" on the opening fence line.
		if newline := strings.IndexByte(text, '\n'); newline >= 0 {
			firstLine := strings.TrimSpace(text[:newline])
			if firstLine != "" && !strings.ContainsAny(firstLine, "[{") {
				text = text[newline+1:]
			}
		}
	}
	if strings.HasSuffix(strings.TrimSpace(text), "```") {
		trimmed := strings.TrimSpace(text)
		text = trimmed[:len(trimmed)-3]
	}

	text = strings.TrimSpace(text)

	if start := strings.IndexByte(text, '['); start >= 0 {
		if end := strings.LastIndexByte(text, ']'); end > start {
			return strings.TrimSpace(text[start : end+1])
		}
	}
	if start := strings.IndexByte(text, '{'); start >= 0 {
		if end := strings.LastIndexByte(text, '}'); end > start {
			return strings.TrimSpace(text[start : end+1])
		}
	}

	return text
}
