package telemetry

import (
	"context"

	"vivasheet/internal/ports"
)

// WrapTextGenerator counts every generative-text call outcome.
func WrapTextGenerator(inner ports.TextGenerator, recorder *Recorder) ports.TextGenerator {
	return recordingGenerator{inner: inner, recorder: recorder}
}

// WrapSpeechToText counts every transcription call outcome.
func WrapSpeechToText(inner ports.SpeechToText, recorder *Recorder) ports.SpeechToText {
	return recordingSpeechToText{inner: inner, recorder: recorder}
}

type recordingGenerator struct {
	inner    ports.TextGenerator
	recorder *Recorder
}

func (g recordingGenerator) Generate(ctx context.Context, prompt string, cfg ports.GenerationConfig) (string, error) {
	text, err := g.inner.Generate(ctx, prompt, cfg)
	g.recorder.APICall(err == nil)
	return text, err
}

type recordingSpeechToText struct {
	inner    ports.SpeechToText
	recorder *Recorder
}

func (s recordingSpeechToText) Transcribe(ctx context.Context, audio []byte) (string, error) {
	text, err := s.inner.Transcribe(ctx, audio)
	s.recorder.APICall(err == nil)
	return text, err
}
