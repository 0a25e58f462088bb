package guide

import (
	"strings"
	"unicode/utf8"
)

// Step represents one line of the Quick Start checklist.
type Step struct {
	Title       string
	Description string
}

// QuickStart returns the Quick Start checklist, one step per workspace tab.
func QuickStart() []Step {
	return []Step{
		{
			Title:       "Dashboard",
			Description: "Enter degree and year",
		},
		{
			Title:       "Insights",
			Description: "Ask questions about careers",
		},
		{
			Title:       "Support",
			Description: "View institution services",
		},
		{
			Title:       "Compare",
			Description: "Analyze two institutions",
		},
	}
}

var sampleQuestions = []string{
	"What are the top 5 employment outcomes for Computer Science graduates from VIT University in 2025?",
	"Which Indian institutions have the highest starting salaries in 2028?",
	"How do employment rates vary between IITs and private universities for 2030 graduates?",
	"What support services are most effective for career success in Indian universities?",
	"What are the salary trends for Engineering graduates from SRM, Amrita, and KL University through 2030?",
	"How will AI and automation affect job prospects for Indian graduates by 2030?",
}

// SampleQuestions returns the canned insight prompts in display order.
func SampleQuestions() []string {
	return append([]string(nil), sampleQuestions...)
}

// ButtonLabel shortens a sample question to its first limit runes followed by "...".
func ButtonLabel(question string, limit int) string {
	question = strings.TrimSpace(question)
	if limit <= 0 || utf8.RuneCountInString(question) <= limit {
		return question
	}
	runes := []rune(question)
	return string(runes[:limit]) + "..."
}
