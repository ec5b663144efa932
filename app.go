package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"vivasheet/internal/bootstrap"
	"vivasheet/internal/config"
	"vivasheet/internal/domain"
	"vivasheet/internal/telemetry"
	"vivasheet/internal/usecase"
)

const (
	eventStage     = "vivasheet:stage"
	eventCountdown = "vivasheet:countdown"
	eventQuestion  = "vivasheet:question"
	eventAnswer    = "vivasheet:answer"
	eventError     = "vivasheet:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	session   *usecase.Session
	reports   usecase.ReportWriter
	telemetry *telemetry.Recorder
	cfg       config.Config
	profile   config.Profile
	bootErr   error
}

func NewApp() *App {
	return &App{}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a, &wailsClipboard{})
	if err != nil {
		a.bootErr = err
		a.SessionError(domain.ErrorCodeStartup, err.Error())
		return
	}

	a.session = services.Session
	a.reports = services.Reports
	a.telemetry = services.Telemetry
	a.cfg = services.Config
	a.profile = services.Profile
	a.StageChanged(a.session.Snapshot(), domain.StageReasonSessionReset)
}

// StartInterview validates the candidate's details and loads the question
// set. It returns once the interview stage is entered; an empty question
// set is reported through the error event and leaves a restart path open.
func (a *App) StartInterview(name string, experienceYears int) (domain.Snapshot, error) {
	if err := a.requireReady(); err != nil {
		return domain.Snapshot{}, err
	}
	if err := a.session.Begin(a.ctx, name, experienceYears); err != nil {
		return a.session.Snapshot(), err
	}
	a.telemetry.InterviewStarted()
	return a.session.Snapshot(), nil
}

// RunPreparation blocks through the per-question preparation countdown and
// unlocks recording. The frontend calls it after showing the question.
func (a *App) RunPreparation() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.session.RunPreparation()
}

// SubmitRecording accepts the captured answer audio, transcribes and scores
// it, and advances to the next question or the end-of-interview summary.
func (a *App) SubmitRecording(audio []byte) (domain.Answer, error) {
	if err := a.requireReady(); err != nil {
		return domain.Answer{}, err
	}
	answer, err := a.session.SubmitRecording(a.ctx, audio)
	if err != nil {
		return domain.Answer{}, err
	}
	a.telemetry.QuestionAnswered()
	return answer, nil
}

// FinishInterview confirms the end-of-interview summary and builds the
// results report.
func (a *App) FinishInterview() (domain.Report, error) {
	if err := a.requireReady(); err != nil {
		return domain.Report{}, err
	}
	report, err := a.session.Finish()
	if err != nil {
		return domain.Report{}, err
	}
	a.telemetry.InterviewCompleted()
	return report, nil
}

// RetakeAssessment resets the session for another run.
func (a *App) RetakeAssessment() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.session.Retake()
}

// GetSnapshot returns the current session state.
func (a *App) GetSnapshot() domain.Snapshot {
	if a.session == nil {
		return domain.Snapshot{Stage: domain.StageWelcome, Phase: domain.PhaseIdle}
	}
	return a.session.Snapshot()
}

// GetReport returns the report built when the interview finished.
func (a *App) GetReport() (domain.Report, error) {
	if err := a.requireReady(); err != nil {
		return domain.Report{}, err
	}
	return a.session.Report()
}

// CopyReport copies the formatted assessment report to the clipboard.
func (a *App) CopyReport() (bool, error) {
	if err := a.requireReady(); err != nil {
		return false, err
	}
	report, err := a.session.Report()
	if err != nil {
		return false, err
	}
	return a.reports.Copy(a.ctx, report), nil
}

// GetTelemetry returns in-process counters for the UI footer.
func (a *App) GetTelemetry() telemetry.Snapshot {
	if a.telemetry == nil {
		return telemetry.Snapshot{}
	}
	return a.telemetry.Snapshot()
}

// GetRuntimeInfo returns non-sensitive config for the UI.
func (a *App) GetRuntimeInfo() map[string]string {
	if a.bootErr != nil {
		return map[string]string{"error": a.bootErr.Error()}
	}

	return map[string]string{
		"topic":          a.profile.Topic,
		"questionCount":  fmt.Sprintf("%d", a.profile.QuestionCount),
		"prepSeconds":    fmt.Sprintf("%d", a.profile.PrepSeconds),
		"generatorModel": a.cfg.Gemini.Model,
		"speechModel":    a.cfg.Deepgram.Model,
		"speechLanguage": a.cfg.Deepgram.Language,
	}
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.session == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// StageChanged emits session lifecycle updates to the frontend.
func (a *App) StageChanged(snapshot domain.Snapshot, reason domain.StageReason) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventStage, map[string]interface{}{
		"snapshot": snapshot,
		"reason":   string(reason),
		"message":  stageReasonMessage(reason),
	})
}

// CountdownTick emits one preparation countdown tick.
func (a *App) CountdownTick(remaining int) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventCountdown, map[string]int{"remaining": remaining})
}

// QuestionChanged emits the question the candidate should now see.
func (a *App) QuestionChanged(index int, question domain.Question) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventQuestion, map[string]interface{}{
		"index":    index,
		"question": question,
	})
}

// AnswerEvaluated emits a processed answer with its evaluation.
func (a *App) AnswerEvaluated(answer domain.Answer) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventAnswer, answer)
}

// SessionError emits backend errors to the UI.
func (a *App) SessionError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

func stageReasonMessage(reason domain.StageReason) string {
	switch reason {
	case domain.StageReasonSessionStarted:
		return "Preparing your interview"
	case domain.StageReasonNameRequired:
		return "Please enter your name to continue"
	case domain.StageReasonQuestionsReady:
		return "Questions ready"
	case domain.StageReasonQuestionsEmpty:
		return "Could not load interview questions. Please try restarting the assessment."
	case domain.StageReasonPreparationDone:
		return "Recording unlocked"
	case domain.StageReasonAnswerRecorded:
		return "Answer processed. Moving to the next question."
	case domain.StageReasonInterviewComplete:
		return "Assessment completed. Please check your report."
	case domain.StageReasonResultsConfirmed:
		return "Results ready"
	case domain.StageReasonSessionReset:
		return "Ready for a new assessment"
	default:
		return ""
	}
}

func errorMessage(code domain.ErrorCode, detail string) string {
	switch code {
	case domain.ErrorCodeStartup:
		return "Startup failed"
	case domain.ErrorCodeGeneration:
		return "Question generation failed"
	case domain.ErrorCodeEvaluation:
		return "Answer evaluation was degraded"
	case domain.ErrorCodeTranscription:
		return "Transcription error"
	case domain.ErrorCodeSession:
		return "Session warning"
	case domain.ErrorCodeClipboard:
		return "Clipboard write failed"
	default:
		if detail == "" {
			return "Unknown error"
		}
		return detail
	}
}

type wailsClipboard struct{}

func (c *wailsClipboard) SetText(ctx context.Context, text string) error {
	return runtime.ClipboardSetText(ctx, text)
}
