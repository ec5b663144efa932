// Package decode turns sanitized model output into validated, typed records.
package decode

import (
	"encoding/json"

	"vivasheet/internal/domain"
)

var questionFields = []string{"question", "category", "expected_points", "voice_hints"}

// Questions decodes a sanitized payload into an ordered question set.
//
// It returns a *DecodeError when the payload is not valid JSON and a
// *ValidationError when the payload is not a non-empty array or when any
// element is missing a required field. Validation is fail-fast: the first
// missing field aborts decoding entirely and the caller receives no
// questions, never a partially valid set. Element order is preserved as
// received.
func Questions(payload string) ([]domain.Question, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		if json.Valid([]byte(payload)) {
			return nil, &ValidationError{Reason: "expected a non-empty list of questions"}
		}
		return nil, &DecodeError{Wrapped: err}
	}
	if len(elements) == 0 {
		return nil, &ValidationError{Reason: "expected a non-empty list of questions"}
	}

	questions := make([]domain.Question, 0, len(elements))
	for i, element := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(element, &fields); err != nil {
			return nil, &ValidationError{Reason: "expected a list of question objects"}
		}
		for _, field := range questionFields {
			if _, ok := fields[field]; !ok {
				return nil, &ValidationError{Index: i + 1, Field: field}
			}
		}

		var question domain.Question
		if err := json.Unmarshal(element, &question); err != nil {
			return nil, &DecodeError{Wrapped: err}
		}
		questions = append(questions, question)
	}

	return questions, nil
}
