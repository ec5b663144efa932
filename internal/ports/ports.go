package ports

import (
	"context"

	"vivasheet/internal/domain"
)

// GenerationConfig describes sampling settings for one text generation call.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// TextGenerator produces a free-form text completion for a prompt.
// An empty completion signals a blocked or failed generation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// SpeechToText transcribes a complete recorded audio buffer.
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Clipboard writes text into the system clipboard.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	StageChanged(snapshot domain.Snapshot, reason domain.StageReason)
	CountdownTick(remaining int)
	QuestionChanged(index int, question domain.Question)
	AnswerEvaluated(answer domain.Answer)
	SessionError(code domain.ErrorCode, detail string)
}
