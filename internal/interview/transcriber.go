package interview

import (
	"context"
	"fmt"
	"strings"

	"vivasheet/internal/ports"
)

// Failure transcripts substituted by the adapter. They flow downstream into
// evaluation as ordinary text.
const (
	transcriptUnintelligible = "Could not understand the audio. Please try speaking more clearly."
	transcriptEmptyRecording = "Error processing audio: the recording contained no data."
)

// TranscriptAdapter wraps the speech-to-text black box and degrades every
// failure mode into a user-facing transcript string. It never fails.
type TranscriptAdapter struct {
	stt ports.SpeechToText
}

func NewTranscriptAdapter(stt ports.SpeechToText) *TranscriptAdapter {
	return &TranscriptAdapter{stt: stt}
}

// Transcribe converts recorded audio bytes into a transcript string.
// Unrecognizable audio maps to a fixed string, service failures map to a
// string embedding the underlying error detail.
func (a *TranscriptAdapter) Transcribe(ctx context.Context, audio []byte) string {
	if len(audio) == 0 {
		return transcriptEmptyRecording
	}

	text, err := a.stt.Transcribe(ctx, audio)
	if err != nil {
		return fmt.Sprintf("Error with speech recognition service: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return transcriptUnintelligible
	}
	return text
}
