// Package interview orchestrates prompt rendering, generative-text calls,
// and response decoding for question generation and answer scoring.
package interview

import (
	"context"
	"fmt"

	"vivasheet/internal/decode"
	"vivasheet/internal/domain"
	"vivasheet/internal/ports"
	"vivasheet/internal/prompts"
	"vivasheet/internal/sanitize"
)

// Sampling settings for question generation. Moderate temperature keeps the
// question mix varied without destabilizing the JSON structure.
var generationSampling = ports.GenerationConfig{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 8192,
}

// Generator produces an ordered question set for one experience level.
type Generator struct {
	textGen       ports.TextGenerator
	topic         string
	questionCount int
}

func NewGenerator(textGen ports.TextGenerator, topic string, questionCount int) *Generator {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &Generator{textGen: textGen, topic: topic, questionCount: questionCount}
}

// Generate returns either a non-empty, fully validated question set or no
// questions at all with the failure reason. It never returns a partially
// valid set. The error is reportable, not fatal: the session offers a
// restart path.
func (g *Generator) Generate(ctx context.Context, experienceYears int) ([]domain.Question, error) {
	prompt := prompts.QuestionSet(g.topic, g.questionCount, experienceYears)

	completion, err := g.textGen.Generate(ctx, prompt, generationSampling)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	questions, err := decode.Questions(sanitize.Clean(completion))
	if err != nil {
		return nil, fmt.Errorf("question generation returned an unusable response: %w", err)
	}

	return questions, nil
}
