package usecase

import (
	"fmt"
	"strings"

	"vivasheet/internal/domain"
)

// Skill-level bucket boundaries for the overall mean score.
const (
	expertThreshold       = 90
	advancedThreshold     = 75
	intermediateThreshold = 60
)

// BuildReport aggregates a finished answer list into the results report:
// overall mean score, per-category means in first-appearance order, the
// skill-level bucket, and its recommendation text.
func BuildReport(sessionID, candidateName string, answers []domain.Answer) domain.Report {
	report := domain.Report{
		SessionID:      sessionID,
		CandidateName:  candidateName,
		QuestionsAsked: len(answers),
		Answers:        answers,
	}
	if len(answers) == 0 {
		report.SkillLevel = skillLevel(0)
		report.Recommendation = recommendation(0)
		return report
	}

	total := 0
	categoryTotals := make(map[string]int)
	categoryCounts := make(map[string]int)
	var categoryOrder []string
	for _, answer := range answers {
		score := answer.Evaluation.Score
		total += score

		category := answer.Question.Category
		if _, seen := categoryCounts[category]; !seen {
			categoryOrder = append(categoryOrder, category)
		}
		categoryTotals[category] += score
		categoryCounts[category]++
	}

	report.OverallScore = float64(total) / float64(len(answers))
	report.SkillLevel = skillLevel(report.OverallScore)
	report.Recommendation = recommendation(report.OverallScore)

	for _, category := range categoryOrder {
		report.CategoryScores = append(report.CategoryScores, domain.CategoryScore{
			Category: category,
			Mean:     float64(categoryTotals[category]) / float64(categoryCounts[category]),
		})
	}
	return report
}

func skillLevel(overall float64) string {
	switch {
	case overall >= expertThreshold:
		return "Expert"
	case overall >= advancedThreshold:
		return "Advanced"
	case overall >= intermediateThreshold:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

func recommendation(overall float64) string {
	switch {
	case overall >= expertThreshold:
		return "Excellent skills! You demonstrate expert-level knowledge. Consider exploring advanced topics like Power Query, VBA automation, or integrating Excel with other data analysis tools."
	case overall >= advancedThreshold:
		return "Strong skills! You have a solid intermediate-to-advanced knowledge base. To advance, focus on mastering complex functions, advanced PivotTable techniques, and robust data modeling."
	case overall >= intermediateThreshold:
		return "Good foundation! You have a good grasp of the basics. Concentrate on intermediate functions like VLOOKUP/XLOOKUP, conditional formatting, and creating more complex charts and dashboards."
	default:
		return "Keep learning! Focus on mastering fundamental functions, cell references, and core operations. A structured beginner's course could be very beneficial."
	}
}

// FormatReport renders a plain-text assessment report for sharing.
func FormatReport(report domain.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skills Assessment Report: %s\n", report.CandidateName)
	fmt.Fprintf(&b, "Overall Score: %.0f%%\n", report.OverallScore)
	fmt.Fprintf(&b, "Assessed Skill Level: %s\n", report.SkillLevel)
	fmt.Fprintf(&b, "Questions Answered: %d\n\n", report.QuestionsAsked)

	if len(report.CategoryScores) > 0 {
		b.WriteString("Performance by Category:\n")
		for _, cs := range report.CategoryScores {
			fmt.Fprintf(&b, "- %s: %.0f%%\n", cs.Category, cs.Mean)
		}
		b.WriteString("\n")
	}

	for i, answer := range report.Answers {
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, answer.Question.Text)
		fmt.Fprintf(&b, "Your Answer: %s\n", answer.Transcript)
		fmt.Fprintf(&b, "Score: %d%% (%d/%d points covered)\n", answer.Evaluation.Score, answer.Evaluation.Matches, answer.Evaluation.TotalPoints)
		fmt.Fprintf(&b, "Feedback: %s\n\n", answer.Evaluation.Feedback)
	}

	b.WriteString(report.Recommendation)
	b.WriteString("\n")
	return b.String()
}
