// Package bootstrap assembles the runtime dependency graph.
package bootstrap

import (
	"errors"
	"time"

	"vivasheet/internal/config"
	"vivasheet/internal/interview"
	"vivasheet/internal/ports"
	"vivasheet/internal/providers/deepgram"
	"vivasheet/internal/providers/gemini"
	"vivasheet/internal/telemetry"
	"vivasheet/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Session   *usecase.Session
	Reports   usecase.ReportWriter
	Telemetry *telemetry.Recorder
	Config    config.Config
	Profile   config.Profile
}

// Build wires all backend dependencies for the current runtime. It fails
// fast when the generative-text credential is missing so no request is ever
// attempted without one.
func Build(events ports.EventSink, clipboard ports.Clipboard) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}
	if !cfg.HasGenerativeCredential() {
		return Services{}, errors.New("GEMINI_API_KEY (or GOOGLE_API_KEY) is not set")
	}

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return Services{}, err
	}

	recorder := telemetry.NewRecorder()

	textGen := telemetry.WrapTextGenerator(gemini.NewClient(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		APIBaseURL: cfg.Gemini.APIBaseURL,
		Model:      cfg.Gemini.Model,
		Timeout:    cfg.Gemini.Timeout,
	}), recorder)

	speech := telemetry.WrapSpeechToText(deepgram.NewClient(deepgram.Config{
		APIKey:      cfg.Deepgram.APIKey,
		APIBaseURL:  cfg.Deepgram.APIBaseURL,
		Model:       cfg.Deepgram.Model,
		Language:    cfg.Deepgram.Language,
		SmartFormat: cfg.Deepgram.SmartFormat,
		Timeout:     cfg.Deepgram.Timeout,
	}), recorder)

	session := usecase.NewSession(
		interview.NewGenerator(textGen, profile.Topic, profile.QuestionCount),
		interview.NewEvaluator(textGen, profile.Topic),
		interview.NewTranscriptAdapter(speech),
		events,
		usecase.Config{
			PrepTicks:          profile.PrepSeconds,
			TickInterval:       time.Second,
			MaxExperienceYears: profile.MaxExperienceYears,
		},
	)

	return Services{
		Session:   session,
		Reports:   usecase.NewReportWriter(clipboard, events),
		Telemetry: recorder,
		Config:    cfg,
		Profile:   profile,
	}, nil
}
