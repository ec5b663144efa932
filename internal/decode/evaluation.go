package decode

import (
	"encoding/json"

	"vivasheet/internal/domain"
)

// MissingFieldSentinel fills textual evaluation fields the model left out.
const MissingFieldSentinel = "N/A"

// Evaluation decodes a sanitized payload into an evaluation record.
//
// Unlike question decoding, missing fields are tolerated: numeric fields
// default to 0 and textual fields to MissingFieldSentinel, so one bad field
// does not void an otherwise usable score. Only invalid JSON fails, with a
// *DecodeError. No range validation is applied to score or matches; callers
// must not assume 0-100 or matches <= total_points hold.
func Evaluation(payload string) (domain.Evaluation, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return domain.Evaluation{}, &DecodeError{Wrapped: err}
	}

	return domain.Evaluation{
		Score:       intField(fields, "score"),
		Rating:      stringField(fields, "rating"),
		Feedback:    stringField(fields, "feedback"),
		Matches:     intField(fields, "matches"),
		TotalPoints: intField(fields, "total_points"),
	}, nil
}

func intField(fields map[string]json.RawMessage, name string) int {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0
	}
	return value
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, ok := fields[name]
	if !ok {
		return MissingFieldSentinel
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return MissingFieldSentinel
	}
	return value
}
