package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"vivasheet/internal/domain"
)

type fakeGenerator struct {
	questions []domain.Question
	err       error
	calls     int
}

func (f *fakeGenerator) Generate(context.Context, int) ([]domain.Question, error) {
	f.calls++
	return f.questions, f.err
}

type fakeEvaluator struct {
	evaluation domain.Evaluation
	err        error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, question domain.Question, _ string) (domain.Evaluation, error) {
	if f.err != nil {
		return domain.Evaluation{
			Score: 0, Rating: "poor", Feedback: "degraded",
			TotalPoints: len(question.ExpectedPoints),
		}, f.err
	}
	return f.evaluation, nil
}

type fakeTranscriber struct {
	transcript string
}

func (f *fakeTranscriber) Transcribe(context.Context, []byte) string {
	return f.transcript
}

type stageEvent struct {
	snapshot domain.Snapshot
	reason   domain.StageReason
}

type errorEvent struct {
	code   domain.ErrorCode
	detail string
}

type fakeEventSink struct {
	mu        sync.Mutex
	stages    []stageEvent
	ticks     []int
	questions []int
	answers   []domain.Answer
	errors    []errorEvent
}

func (f *fakeEventSink) StageChanged(snapshot domain.Snapshot, reason domain.StageReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stages = append(f.stages, stageEvent{snapshot: snapshot, reason: reason})
}

func (f *fakeEventSink) CountdownTick(remaining int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks = append(f.ticks, remaining)
}

func (f *fakeEventSink) QuestionChanged(index int, _ domain.Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, index)
}

func (f *fakeEventSink) AnswerEvaluated(answer domain.Answer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, answer)
}

func (f *fakeEventSink) SessionError(code domain.ErrorCode, detail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, errorEvent{code: code, detail: detail})
}

func (f *fakeEventSink) lastStageReason() domain.StageReason {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.stages) == 0 {
		return ""
	}
	return f.stages[len(f.stages)-1].reason
}

func questionSet(n int) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			Text:           fmt.Sprintf("question %d", i+1),
			Category:       "Formulas",
			ExpectedPoints: []string{"a", "b", "c"},
			VoiceHints:     "hint",
		}
	}
	return questions
}

func newTestSession(generator *fakeGenerator, evaluator *fakeEvaluator, events *fakeEventSink) *Session {
	session := NewSession(
		generator,
		evaluator,
		&fakeTranscriber{transcript: "spoken answer"},
		events,
		Config{PrepTicks: 3, TickInterval: time.Nanosecond},
	)
	session.sleep = func(time.Duration) {}
	return session
}

func TestSessionBeginRequiresName(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(2)}, &fakeEvaluator{}, events)

	err := session.Begin(context.Background(), "   ", 3)
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if session.Snapshot().Stage != domain.StageWelcome {
		t.Fatalf("empty name must block the welcome transition")
	}
	if len(events.errors) == 0 {
		t.Fatalf("expected a warning event for the missing name")
	}
}

func TestSessionBeginEntersInterviewWithQuestions(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(2)}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 3); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	snapshot := session.Snapshot()
	if snapshot.Stage != domain.StageInterview || snapshot.Phase != domain.PhasePreparing {
		t.Fatalf("unexpected state after begin: %+v", snapshot)
	}
	if snapshot.QuestionCount != 2 || snapshot.QuestionIndex != 0 {
		t.Fatalf("unexpected question bookkeeping: %+v", snapshot)
	}
	if events.lastStageReason() != domain.StageReasonQuestionsReady {
		t.Fatalf("unexpected final reason: %s", events.lastStageReason())
	}
}

func TestSessionBeginClampsExperienceYears(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(1)}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 900); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if got := session.Snapshot().ExperienceYears; got != 50 {
		t.Fatalf("expected clamped experience 50, got %d", got)
	}
}

func TestSessionBeginWithEmptySetStillEntersInterview(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{err: errors.New("generation failed")}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 3); err != nil {
		t.Fatalf("generation failure must not fail begin: %v", err)
	}

	snapshot := session.Snapshot()
	if snapshot.Stage != domain.StageInterview {
		t.Fatalf("interview stage must be entered even with no questions, got %s", snapshot.Stage)
	}
	if snapshot.QuestionCount != 0 {
		t.Fatalf("expected empty question set, got %d", snapshot.QuestionCount)
	}
	if events.lastStageReason() != domain.StageReasonQuestionsEmpty {
		t.Fatalf("expected questions_empty reason, got %s", events.lastStageReason())
	}
	if len(events.errors) == 0 || events.errors[0].code != domain.ErrorCodeGeneration {
		t.Fatalf("expected a reported generation error")
	}

	if err := session.RunPreparation(); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("preparation must be refused with no questions, got %v", err)
	}
}

func TestSessionRetakeRestartsAfterEmptySet(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	generator := &fakeGenerator{err: errors.New("generation failed")}
	session := newTestSession(generator, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 3); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if events.lastStageReason() != domain.StageReasonQuestionsEmpty {
		t.Fatalf("expected questions_empty reason, got %s", events.lastStageReason())
	}

	if err := session.Retake(); err != nil {
		t.Fatalf("retake must be accepted after an empty set: %v", err)
	}
	snapshot := session.Snapshot()
	if snapshot.Stage != domain.StageWelcome {
		t.Fatalf("retake must return to welcome, got %s", snapshot.Stage)
	}
	if snapshot.CandidateName != "Ada" || snapshot.ExperienceYears != 3 {
		t.Fatalf("retake keeps name and experience: %+v", snapshot)
	}

	generator.err = nil
	generator.questions = questionSet(2)
	if err := session.Begin(context.Background(), "Ada", 3); err != nil {
		t.Fatalf("restart after retake failed: %v", err)
	}
	if got := session.Snapshot(); got.Stage != domain.StageInterview || got.QuestionCount != 2 {
		t.Fatalf("restart must reload questions: %+v", got)
	}

	if err := session.Retake(); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("retake mid-interview with questions loaded must be refused, got %v", err)
	}
}

func TestSessionFullLoopEndsInSummary(t *testing.T) {
	t.Parallel()

	const n = 4
	events := &fakeEventSink{}
	evaluator := &fakeEvaluator{evaluation: domain.Evaluation{Score: 80, Rating: "good", Feedback: "ok", Matches: 2, TotalPoints: 3}}
	session := newTestSession(&fakeGenerator{questions: questionSet(n)}, evaluator, events)

	if err := session.Begin(context.Background(), "Ada", 3); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	for i := 0; i < n; i++ {
		if err := session.RunPreparation(); err != nil {
			t.Fatalf("preparation %d failed: %v", i+1, err)
		}
		answer, err := session.SubmitRecording(context.Background(), []byte("audio"))
		if err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
		if answer.Question.Text != fmt.Sprintf("question %d", i+1) {
			t.Fatalf("answers must follow question order, got %q", answer.Question.Text)
		}
		if answer.ID == "" {
			t.Fatalf("answers must carry an ID")
		}
		if answer.Transcript != "spoken answer" {
			t.Fatalf("unexpected transcript: %q", answer.Transcript)
		}
	}

	snapshot := session.Snapshot()
	if snapshot.QuestionIndex != n {
		t.Fatalf("expected question index %d, got %d", n, snapshot.QuestionIndex)
	}
	if len(events.answers) != n {
		t.Fatalf("expected %d answers, got %d", n, len(events.answers))
	}
	if snapshot.Stage != domain.StageInterview || snapshot.Phase != domain.PhaseSummary {
		t.Fatalf("loop must end in the summary sub-view, not results: %+v", snapshot)
	}
	if snapshot.LastTranscript != "spoken answer" {
		t.Fatalf("summary should echo the last transcript, got %q", snapshot.LastTranscript)
	}
}

func TestSessionCountdownRunsFully(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(1)}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 0); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := session.RunPreparation(); err != nil {
		t.Fatalf("preparation failed: %v", err)
	}

	if len(events.ticks) != 3 {
		t.Fatalf("expected 3 countdown ticks, got %d", len(events.ticks))
	}
	if events.ticks[0] != 3 || events.ticks[2] != 1 {
		t.Fatalf("countdown must run down to 1: %v", events.ticks)
	}
	if session.Snapshot().Phase != domain.PhaseRecording {
		t.Fatalf("recording must unlock after the countdown")
	}
}

func TestSessionSubmitOutsideRecordingPhaseIsRefused(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(1)}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 0); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	_, err := session.SubmitRecording(context.Background(), []byte("audio"))
	if !errors.Is(err, ErrNotRecording) {
		t.Fatalf("expected ErrNotRecording during preparation, got %v", err)
	}
}

func TestSessionDegradedEvaluationKeepsInterviewMoving(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	evaluator := &fakeEvaluator{err: errors.New("service blocked")}
	session := newTestSession(&fakeGenerator{questions: questionSet(2)}, evaluator, events)

	if err := session.Begin(context.Background(), "Ada", 0); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := session.RunPreparation(); err != nil {
		t.Fatalf("preparation failed: %v", err)
	}

	answer, err := session.SubmitRecording(context.Background(), []byte("audio"))
	if err != nil {
		t.Fatalf("degraded evaluation must not fail the submission: %v", err)
	}
	if answer.Evaluation.Score != 0 || answer.Evaluation.Rating != "poor" {
		t.Fatalf("expected canonical zero-score evaluation, got %+v", answer.Evaluation)
	}
	if answer.Evaluation.TotalPoints != 3 {
		t.Fatalf("expected total points from the question rubric, got %d", answer.Evaluation.TotalPoints)
	}

	if len(events.errors) == 0 || events.errors[len(events.errors)-1].code != domain.ErrorCodeEvaluation {
		t.Fatalf("expected an evaluation error event")
	}
	if session.Snapshot().Phase != domain.PhasePreparing {
		t.Fatalf("the interview must continue to the next question")
	}
}

func TestSessionFinishAndRetake(t *testing.T) {
	t.Parallel()

	events := &fakeEventSink{}
	evaluator := &fakeEvaluator{evaluation: domain.Evaluation{Score: 90, Rating: "excellent", Matches: 3, TotalPoints: 3}}
	session := newTestSession(&fakeGenerator{questions: questionSet(1)}, evaluator, events)

	if err := session.Begin(context.Background(), "Ada", 7); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if _, err := session.Finish(); !errors.Is(err, ErrWrongStage) {
		t.Fatalf("finish must be refused before the summary sub-view, got %v", err)
	}
	if err := session.RunPreparation(); err != nil {
		t.Fatalf("preparation failed: %v", err)
	}
	if _, err := session.SubmitRecording(context.Background(), []byte("audio")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	report, err := session.Finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if report.CandidateName != "Ada" || report.QuestionsAsked != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.SessionID == "" {
		t.Fatalf("report must carry the session ID")
	}
	if session.Snapshot().Stage != domain.StageResults {
		t.Fatalf("finish must land in results")
	}

	stored, err := session.Report()
	if err != nil {
		t.Fatalf("report lookup failed: %v", err)
	}
	if stored.SessionID != report.SessionID {
		t.Fatalf("stored report mismatch")
	}

	if err := session.Retake(); err != nil {
		t.Fatalf("retake failed: %v", err)
	}
	snapshot := session.Snapshot()
	if snapshot.Stage != domain.StageWelcome || snapshot.QuestionIndex != 0 || snapshot.QuestionCount != 0 {
		t.Fatalf("retake must clear stage, questions, and index: %+v", snapshot)
	}
	if snapshot.CandidateName != "Ada" || snapshot.ExperienceYears != 7 {
		t.Fatalf("retake keeps name and experience: %+v", snapshot)
	}
	if _, err := session.Report(); !errors.Is(err, ErrNoReport) {
		t.Fatalf("retake must drop the previous report, got %v", err)
	}
	if events.lastStageReason() != domain.StageReasonSessionReset {
		t.Fatalf("unexpected final reason: %s", events.lastStageReason())
	}
}

func TestSessionAnswersTrackIndexInvariant(t *testing.T) {
	t.Parallel()

	const n = 3
	events := &fakeEventSink{}
	session := newTestSession(&fakeGenerator{questions: questionSet(n)}, &fakeEvaluator{}, events)

	if err := session.Begin(context.Background(), "Ada", 1); err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	for i := 0; i < n; i++ {
		snapshot := session.Snapshot()
		if snapshot.QuestionIndex != i {
			t.Fatalf("index %d expected before answer %d", snapshot.QuestionIndex, i)
		}
		if err := session.RunPreparation(); err != nil {
			t.Fatalf("preparation failed: %v", err)
		}
		if _, err := session.SubmitRecording(context.Background(), []byte("audio")); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if got := len(events.answers); got != i+1 {
			t.Fatalf("answer count %d must equal advanced index %d", got, i+1)
		}
	}
}
