// Package usecase owns the interview session state machine and the results
// report it produces.
package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vivasheet/internal/domain"
	"vivasheet/internal/ports"
)

var (
	ErrNameRequired = errors.New("candidate name is required")
	ErrWrongStage   = errors.New("operation is not valid in the current stage")
	ErrNotRecording = errors.New("no recording is expected right now")
	ErrNoReport     = errors.New("no completed interview report available")
	ErrNoQuestions  = errors.New("no interview questions are loaded")
)

// Interfaces are defined here, where they are consumed, so tests can supply
// canned generators and evaluators.

type questionGenerator interface {
	Generate(ctx context.Context, experienceYears int) ([]domain.Question, error)
}

type answerEvaluator interface {
	Evaluate(ctx context.Context, question domain.Question, transcript string) (domain.Evaluation, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte) string
}

// Config controls session behavior.
type Config struct {
	// PrepTicks is the preparation countdown length before recording unlocks.
	PrepTicks int
	// TickInterval is the real duration of one countdown tick.
	TickInterval time.Duration
	// MaxExperienceYears caps the candidate-supplied experience value.
	MaxExperienceYears int
}

// Session drives one candidate's run from welcome to results. All mutation
// happens through its transition methods; there is exactly one session per
// process and it is discarded on restart.
type Session struct {
	generator   questionGenerator
	evaluator   answerEvaluator
	transcriber transcriber
	events      ports.EventSink
	cfg         Config

	// sleep is swapped out in tests so the countdown runs instantly.
	sleep func(time.Duration)

	mu             sync.Mutex
	id             string
	stage          domain.Stage
	phase          domain.Phase
	name           string
	years          int
	questions      []domain.Question
	answers        []domain.Answer
	index          int
	lastTranscript string
	report         *domain.Report
}

func NewSession(
	generator questionGenerator,
	evaluator answerEvaluator,
	transcriber transcriber,
	events ports.EventSink,
	cfg Config,
) *Session {
	if cfg.PrepTicks <= 0 {
		cfg.PrepTicks = 40
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.MaxExperienceYears <= 0 {
		cfg.MaxExperienceYears = 50
	}
	return &Session{
		generator:   generator,
		evaluator:   evaluator,
		transcriber: transcriber,
		events:      events,
		cfg:         cfg,
		sleep:       time.Sleep,
		stage:       domain.StageWelcome,
		phase:       domain.PhaseIdle,
	}
}

// Begin moves welcome -> loading_questions -> interview. An empty name
// blocks the transition with a warning. The interview stage is entered even
// when generation yields no questions; the empty set is surfaced as a
// recoverable error so the UI can offer a restart.
func (s *Session) Begin(ctx context.Context, name string, experienceYears int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		s.events.SessionError(domain.ErrorCodeSession, "Please enter your name to continue.")
		s.events.StageChanged(s.Snapshot(), domain.StageReasonNameRequired)
		return ErrNameRequired
	}
	if experienceYears < 0 {
		experienceYears = 0
	}
	if experienceYears > s.cfg.MaxExperienceYears {
		experienceYears = s.cfg.MaxExperienceYears
	}

	s.mu.Lock()
	if s.stage != domain.StageWelcome {
		s.mu.Unlock()
		return ErrWrongStage
	}
	s.id = uuid.NewString()
	s.name = name
	s.years = experienceYears
	s.stage = domain.StageLoadingQuestions
	s.mu.Unlock()
	s.events.StageChanged(s.Snapshot(), domain.StageReasonSessionStarted)

	questions, err := s.generator.Generate(ctx, experienceYears)
	if err != nil {
		s.events.SessionError(domain.ErrorCodeGeneration, err.Error())
	}

	s.mu.Lock()
	s.stage = domain.StageInterview
	s.questions = questions
	s.answers = nil
	s.index = 0
	if len(questions) == 0 {
		s.phase = domain.PhaseIdle
		s.mu.Unlock()
		s.events.StageChanged(s.Snapshot(), domain.StageReasonQuestionsEmpty)
		return nil
	}
	s.phase = domain.PhasePreparing
	first := questions[0]
	s.mu.Unlock()

	s.events.QuestionChanged(0, first)
	s.events.StageChanged(s.Snapshot(), domain.StageReasonQuestionsReady)
	return nil
}

// RunPreparation blocks through the full countdown before recording is
// enabled. The countdown cannot be interrupted early.
func (s *Session) RunPreparation() error {
	s.mu.Lock()
	if s.stage != domain.StageInterview || s.phase != domain.PhasePreparing {
		s.mu.Unlock()
		return ErrWrongStage
	}
	if s.index >= len(s.questions) {
		s.mu.Unlock()
		return ErrNoQuestions
	}
	s.mu.Unlock()

	for remaining := s.cfg.PrepTicks; remaining > 0; remaining-- {
		s.events.CountdownTick(remaining)
		s.sleep(s.cfg.TickInterval)
	}

	s.mu.Lock()
	s.phase = domain.PhaseRecording
	s.mu.Unlock()
	s.events.StageChanged(s.Snapshot(), domain.StageReasonPreparationDone)
	return nil
}

// SubmitRecording consumes one captured audio buffer: transcription and
// evaluation run synchronously, the answer is appended in question order,
// and the index advances by exactly one. After the last question the
// session enters the end-of-interview summary sub-view instead of
// re-entering preparation.
func (s *Session) SubmitRecording(ctx context.Context, audio []byte) (domain.Answer, error) {
	s.mu.Lock()
	if s.stage != domain.StageInterview || s.phase != domain.PhaseRecording {
		s.mu.Unlock()
		return domain.Answer{}, ErrNotRecording
	}
	question := s.questions[s.index]
	s.phase = domain.PhaseProcessing
	s.mu.Unlock()

	transcript := s.transcriber.Transcribe(ctx, audio)

	evaluation, err := s.evaluator.Evaluate(ctx, question, transcript)
	if err != nil {
		// Degraded evaluation: report it, keep the interview moving.
		s.events.SessionError(domain.ErrorCodeEvaluation, err.Error())
	}

	answer := domain.Answer{
		ID:         uuid.NewString(),
		Question:   question,
		Transcript: transcript,
		Evaluation: evaluation,
	}

	s.mu.Lock()
	s.answers = append(s.answers, answer)
	s.index++
	s.lastTranscript = transcript
	finished := s.index == len(s.questions)
	if finished {
		s.phase = domain.PhaseSummary
	} else {
		s.phase = domain.PhasePreparing
	}
	index := s.index
	var next domain.Question
	if !finished {
		next = s.questions[index]
	}
	s.mu.Unlock()

	s.events.AnswerEvaluated(answer)
	if finished {
		s.events.StageChanged(s.Snapshot(), domain.StageReasonInterviewComplete)
	} else {
		s.events.QuestionChanged(index, next)
		s.events.StageChanged(s.Snapshot(), domain.StageReasonAnswerRecorded)
	}
	return answer, nil
}

// Finish moves from the end-of-interview summary to results on explicit
// candidate confirmation and builds the final report.
func (s *Session) Finish() (domain.Report, error) {
	s.mu.Lock()
	if s.stage != domain.StageInterview || s.phase != domain.PhaseSummary {
		s.mu.Unlock()
		return domain.Report{}, ErrWrongStage
	}
	s.stage = domain.StageResults
	s.phase = domain.PhaseIdle
	s.lastTranscript = ""
	report := BuildReport(s.id, s.name, s.answers)
	s.report = &report
	s.mu.Unlock()

	s.events.StageChanged(s.Snapshot(), domain.StageReasonResultsConfirmed)
	return report, nil
}

// Report returns the report built by Finish.
func (s *Session) Report() (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.report == nil {
		return domain.Report{}, ErrNoReport
	}
	return *s.report, nil
}

// Retake resets the session for another run. Stage, questions, answers, and
// the question index are cleared; the candidate's name and experience are
// intentionally retained so a retake does not re-ask for them. Besides the
// results stage, a retake is accepted from an interview that loaded no
// questions, which is the restart path for a failed generation.
func (s *Session) Retake() error {
	s.mu.Lock()
	emptyInterview := s.stage == domain.StageInterview && len(s.questions) == 0
	if s.stage != domain.StageResults && !emptyInterview {
		s.mu.Unlock()
		return ErrWrongStage
	}
	s.stage = domain.StageWelcome
	s.phase = domain.PhaseIdle
	s.questions = nil
	s.answers = nil
	s.index = 0
	s.lastTranscript = ""
	s.report = nil
	s.id = ""
	s.mu.Unlock()

	s.events.StageChanged(s.Snapshot(), domain.StageReasonSessionReset)
	return nil
}

// Snapshot returns the current session state for the UI.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Snapshot{
		Stage:           s.stage,
		Phase:           s.phase,
		CandidateName:   s.name,
		ExperienceYears: s.years,
		QuestionIndex:   s.index,
		QuestionCount:   len(s.questions),
		LastTranscript:  s.lastTranscript,
	}
}
