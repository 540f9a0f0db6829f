package content

import (
	"fmt"

	"github.com/yungbote/edubot-backend/internal/domain"
)

// The fallbacks are deterministic and network-free. They satisfy the same shape
// rules as a successful parse.

func FallbackQuiz(source string, count int) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, domain.QuizQuestion{
			Question:      fmt.Sprintf("Question %d about %s?", i, source),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: 0,
			Explanation:   "This is the correct answer explanation.",
		})
	}
	return out
}

func FallbackSyllabus(topic string, modules int) domain.SyllabusPlan {
	plan := domain.SyllabusPlan{
		Topic:         topic,
		Overview:      fmt.Sprintf("This course provides a comprehensive introduction to %s", topic),
		TotalDuration: "4-6 weeks",
		LearningObjectives: []string{
			fmt.Sprintf("Understand the fundamentals of %s", topic),
			fmt.Sprintf("Apply %s concepts in practice", topic),
			fmt.Sprintf("Analyze and evaluate %s applications", topic),
		},
		Modules: make([]domain.SyllabusModule, 0, modules),
	}
	for i := 1; i <= modules; i++ {
		plan.Modules = append(plan.Modules, domain.SyllabusModule{
			Title:       fmt.Sprintf("Module %d: %s - Part %d", i, topic, i),
			Description: fmt.Sprintf("This module covers important aspects of %s", topic),
		})
	}
	return plan
}

func FallbackModuleDetail(planned domain.SyllabusModule) domain.ModuleDetail {
	return domain.ModuleDetail{
		Title:       planned.Title,
		Description: planned.Description,
		Content:     fmt.Sprintf("This module covers %s. Students will learn key concepts and practical applications.", planned.Description),
		KeyPoints: []string{
			"Key concept 1",
			"Key concept 2",
			"Key concept 3",
			"Practical application",
			"Best practices",
		},
		EstimatedDuration: "2-3 hours",
	}
}
