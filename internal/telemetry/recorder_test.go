package telemetry

import (
	"context"
	"errors"
	"testing"

	"vivasheet/internal/ports"
)

func TestRecorderCountsActivity(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.InterviewStarted()
	r.QuestionAnswered()
	r.QuestionAnswered()
	r.InterviewCompleted()

	snap := r.Snapshot()
	if snap.InterviewsStarted != 1 || snap.InterviewsCompleted != 1 {
		t.Fatalf("unexpected interview counters: %+v", snap)
	}
	if snap.QuestionsAnswered != 2 {
		t.Fatalf("unexpected answer counter: %+v", snap)
	}
	if snap.LastUpdate.IsZero() {
		t.Fatalf("last update should be set")
	}
}

func TestRecorderSeparatesFailedAPICalls(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.APICall(true)
	r.APICall(false)
	r.APICall(true)

	snap := r.Snapshot()
	if snap.APICallsTotal != 3 || snap.APICallsFailed != 1 {
		t.Fatalf("unexpected API counters: %+v", snap)
	}
}

type stubGenerator struct {
	err error
}

func (s stubGenerator) Generate(context.Context, string, ports.GenerationConfig) (string, error) {
	return "text", s.err
}

type stubSpeechToText struct {
	err error
}

func (s stubSpeechToText) Transcribe(context.Context, []byte) (string, error) {
	return "transcript", s.err
}

func TestWrappersRecordOutcomes(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	gen := WrapTextGenerator(stubGenerator{}, r)
	stt := WrapSpeechToText(stubSpeechToText{err: errors.New("boom")}, r)

	if _, err := gen.Generate(context.Background(), "p", ports.GenerationConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stt.Transcribe(context.Background(), []byte("a")); err == nil {
		t.Fatalf("expected wrapped error to pass through")
	}

	snap := r.Snapshot()
	if snap.APICallsTotal != 2 || snap.APICallsFailed != 1 {
		t.Fatalf("unexpected counters after wrapped calls: %+v", snap)
	}
}
