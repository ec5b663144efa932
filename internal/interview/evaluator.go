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

// Sampling settings for answer evaluation. Evaluations are short, so the
// output budget is much smaller than for generation.
var evaluationSampling = ports.GenerationConfig{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

// Evaluator scores one transcript against one question's rubric.
type Evaluator struct {
	textGen ports.TextGenerator
	topic   string
}

func NewEvaluator(textGen ports.TextGenerator, topic string) *Evaluator {
	return &Evaluator{textGen: textGen, topic: topic}
}

// Evaluate always returns a structurally complete evaluation. When the
// service call or decoding fails, the returned evaluation is the canonical
// zero-score record and the error describes why it was degraded; the
// interview continues either way.
func (e *Evaluator) Evaluate(ctx context.Context, question domain.Question, transcript string) (domain.Evaluation, error) {
	prompt := prompts.Evaluation(e.topic, question, transcript)

	completion, err := e.textGen.Generate(ctx, prompt, evaluationSampling)
	if err != nil {
		return failureEvaluation(question, "Could not evaluate the answer due to an API error."),
			fmt.Errorf("evaluation request failed: %w", err)
	}

	evaluation, err := decode.Evaluation(sanitize.Clean(completion))
	if err != nil {
		return failureEvaluation(question, "Could not evaluate the answer due to a JSON parsing error."),
			fmt.Errorf("evaluation returned an unusable response: %w", err)
	}

	return evaluation, nil
}

// failureEvaluation is the canonical zero-score record substituted whenever
// an evaluation cannot be produced.
func failureEvaluation(question domain.Question, feedback string) domain.Evaluation {
	return domain.Evaluation{
		Score:       0,
		Rating:      "poor",
		Feedback:    feedback,
		Matches:     0,
		TotalPoints: len(question.ExpectedPoints),
	}
}
