package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/edubot-backend/internal/domain"
)

// ErrParse reports provider output that does not match the expected shape.
// It never leaves the content service; callers substitute a fallback.
var ErrParse = errors.New("provider output did not match expected shape")

func parseErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// StripFences trims whitespace and one surrounding markdown code fence.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json") up to the first newline.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func decode(raw string, v any) error {
	body := StripFences(raw)
	if body == "" {
		return parseErr("empty output")
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return parseErr("decode: %v", err)
	}
	return nil
}

type rawQuestion struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correct_answer"`
	Explanation   *string  `json:"explanation"`
}

// ParseQuiz decodes exactly want questions. Any missing field, wrong option count,
// out-of-range answer index or count mismatch is a parse failure.
func ParseQuiz(raw string, want int) ([]domain.QuizQuestion, error) {
	var doc struct {
		Questions []rawQuestion `json:"questions"`
	}
	if err := decode(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Questions == nil {
		return nil, parseErr("missing questions")
	}
	if len(doc.Questions) != want {
		return nil, parseErr("got %d questions, want %d", len(doc.Questions), want)
	}
	out := make([]domain.QuizQuestion, 0, len(doc.Questions))
	for i, q := range doc.Questions {
		if q.Question == nil || strings.TrimSpace(*q.Question) == "" {
			return nil, parseErr("question %d: missing question", i)
		}
		if len(q.Options) != domain.QuizOptionCount {
			return nil, parseErr("question %d: %d options", i, len(q.Options))
		}
		if q.CorrectAnswer == nil || *q.CorrectAnswer < 0 || *q.CorrectAnswer >= domain.QuizOptionCount {
			return nil, parseErr("question %d: bad correct_answer", i)
		}
		if q.Explanation == nil {
			return nil, parseErr("question %d: missing explanation", i)
		}
		out = append(out, domain.QuizQuestion{
			Question:      *q.Question,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: *q.CorrectAnswer,
			Explanation:   *q.Explanation,
		})
	}
	return out, nil
}

// ParseSyllabus decodes a plan with exactly modules entries. Topic is set by the caller.
func ParseSyllabus(raw string, topic string, modules int) (domain.SyllabusPlan, error) {
	var doc struct {
		Overview *string `json:"overview"`
		Modules  []struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
		} `json:"modules"`
		TotalDuration      *string  `json:"total_duration"`
		LearningObjectives []string `json:"learning_objectives"`
	}
	if err := decode(raw, &doc); err != nil {
		return domain.SyllabusPlan{}, err
	}
	switch {
	case doc.Overview == nil:
		return domain.SyllabusPlan{}, parseErr("missing overview")
	case doc.TotalDuration == nil:
		return domain.SyllabusPlan{}, parseErr("missing total_duration")
	case doc.LearningObjectives == nil:
		return domain.SyllabusPlan{}, parseErr("missing learning_objectives")
	case len(doc.Modules) != modules:
		return domain.SyllabusPlan{}, parseErr("got %d modules, want %d", len(doc.Modules), modules)
	}
	plan := domain.SyllabusPlan{
		Topic:              topic,
		Overview:           *doc.Overview,
		TotalDuration:      *doc.TotalDuration,
		LearningObjectives: doc.LearningObjectives,
		Modules:            make([]domain.SyllabusModule, 0, len(doc.Modules)),
	}
	for i, m := range doc.Modules {
		if m.Title == nil || strings.TrimSpace(*m.Title) == "" {
			return domain.SyllabusPlan{}, parseErr("module %d: missing title", i)
		}
		if m.Description == nil {
			return domain.SyllabusPlan{}, parseErr("module %d: missing description", i)
		}
		plan.Modules = append(plan.Modules, domain.SyllabusModule{Title: *m.Title, Description: *m.Description})
	}
	return plan, nil
}

// ParseModuleDetail decodes the generated body of one planned module. Title and
// description always come from the plan, never from the output.
func ParseModuleDetail(raw string, planned domain.SyllabusModule) (domain.ModuleDetail, error) {
	var doc struct {
		Content           *string  `json:"content"`
		KeyPoints         []string `json:"key_points"`
		EstimatedDuration *string  `json:"estimated_duration"`
	}
	if err := decode(raw, &doc); err != nil {
		return domain.ModuleDetail{}, err
	}
	switch {
	case doc.Content == nil:
		return domain.ModuleDetail{}, parseErr("missing content")
	case doc.KeyPoints == nil:
		return domain.ModuleDetail{}, parseErr("missing key_points")
	case doc.EstimatedDuration == nil:
		return domain.ModuleDetail{}, parseErr("missing estimated_duration")
	}
	return domain.ModuleDetail{
		Title:             planned.Title,
		Description:       planned.Description,
		Content:           *doc.Content,
		KeyPoints:         doc.KeyPoints,
		EstimatedDuration: *doc.EstimatedDuration,
	}, nil
}
