// Package prompts builds the instruction text sent to the generative-text
// service.
package prompts

import (
	"fmt"
	"strings"

	"vivasheet/internal/domain"
)

// QuestionSet renders the question-generation prompt for one topic and
// experience level. The reply must be a pure JSON array, so the prompt
// repeats that instruction and closes with the expected format.
func QuestionSet(topic string, questionCount, experienceYears int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d interview questions for a %s position for a candidate with %d years of experience.\n",
		questionCount, topic, experienceYears)
	b.WriteString("The questions should cover a range of relevant topics, from basic to advanced, appropriate for that experience level.\n\n")

	b.WriteString("IMPORTANT: Return ONLY a valid JSON array. Do not include any markdown formatting, code blocks, or explanatory text.\n\n")

	b.WriteString("Each object in the array should have these exact keys:\n")
	b.WriteString("- \"question\": The interview question (string)\n")
	b.WriteString("- \"category\": A relevant category (string, e.g., \"Data Analysis\", \"Lookup Functions\")\n")
	b.WriteString("- \"expected_points\": A list of 3-4 key points expected in a good answer (array of strings)\n")
	b.WriteString("- \"voice_hints\": A short hint for what to mention (string)\n\n")

	b.WriteString(`Return format (no code blocks, just the JSON):
[
    {
        "question": "How do you create a basic SUM formula in Excel?",
        "category": "Basic Functions",
        "expected_points": [
            "Use =SUM(range) syntax",
            "Specify cell range like A1:A10",
            "Can add individual cells with commas"
        ],
        "voice_hints": "Mention the equals sign, include cell references, explain the syntax"
    }
]`)

	return b.String()
}

// Evaluation renders the answer-scoring prompt for one question and the
// candidate's transcript, embedded verbatim.
func Evaluation(topic string, question domain.Question, transcript string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert %s interview evaluator. Your task is to evaluate a candidate's answer to an interview question.\n\n", topic)

	b.WriteString("Here is the context:\n")
	fmt.Fprintf(&b, "- Interview Question: %q\n", question.Text)
	fmt.Fprintf(&b, "- Key points expected in the answer: %s\n\n", formatExpectedPoints(question.ExpectedPoints))

	b.WriteString("Here is the candidate's answer:\n")
	fmt.Fprintf(&b, "- Candidate's Answer: %q\n\n", transcript)

	b.WriteString("IMPORTANT: Return ONLY a valid JSON object. Do not include any markdown formatting, code blocks, or explanatory text.\n\n")

	b.WriteString("Evaluate the answer and provide:\n")
	b.WriteString("1. \"score\": An integer score from 0 to 100\n")
	b.WriteString("2. \"rating\": A string rating: \"excellent\", \"good\", \"fair\", or \"poor\"\n")
	b.WriteString("3. \"feedback\": A constructive feedback string\n")
	b.WriteString("4. \"matches\": The number of key points covered (integer)\n")
	b.WriteString("5. \"total_points\": The total number of key points (integer)\n\n")

	b.WriteString(`Return format (no code blocks, just the JSON):
{
    "score": 85,
    "rating": "good",
    "feedback": "Very good! You understand the main concepts well, but you could have explained one of the points in more detail.",
    "matches": 3,
    "total_points": 4
}`)

	return b.String()
}

func formatExpectedPoints(points []string) string {
	if len(points) == 0 {
		return "[]"
	}
	quoted := make([]string, len(points))
	for i, point := range points {
		quoted[i] = fmt.Sprintf("%q", point)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
