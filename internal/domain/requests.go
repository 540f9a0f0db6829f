package domain

import "strings"

const (
	DefaultSummaryLength = 150
	DefaultQuestionCount = 5
	DefaultModulesCount  = 5

	// CourseQuizQuestions and CourseQuizDifficulty shape the whole-topic quiz
	// attached to every generated course.
	CourseQuizQuestions  = 10
	CourseQuizDifficulty = DifficultyMedium
)

type SummarizeRequest struct {
	Text      string `json:"text" validate:"required,max=10000"`
	APIKey    string `json:"api_key" validate:"required"`
	MaxLength int    `json:"max_length" validate:"gte=50,lte=500"`
}

func (r *SummarizeRequest) ApplyDefaults() {
	if r.MaxLength == 0 {
		r.MaxLength = DefaultSummaryLength
	}
}

type ExplainRequest struct {
	Concept string           `json:"concept" validate:"required,max=1000"`
	APIKey  string           `json:"api_key" validate:"required"`
	Level   ExplanationLevel `json:"level" validate:"oneof=beginner intermediate advanced"`
}

func (r *ExplainRequest) ApplyDefaults() {
	r.Level = ExplanationLevel(strings.ToLower(strings.TrimSpace(string(r.Level))))
	if r.Level == "" {
		r.Level = LevelIntermediate
	}
}

// QuizRequest needs a topic or a text; the topic wins when both are set.
type QuizRequest struct {
	Topic        string     `json:"topic" validate:"omitempty,max=500"`
	Text         string     `json:"text" validate:"omitempty,max=10000"`
	APIKey       string     `json:"api_key" validate:"required"`
	NumQuestions int        `json:"num_questions" validate:"gte=1,lte=20"`
	Difficulty   Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
}

func (r *QuizRequest) ApplyDefaults() {
	if r.NumQuestions == 0 {
		r.NumQuestions = DefaultQuestionCount
	}
	r.Difficulty = Difficulty(strings.ToLower(strings.TrimSpace(string(r.Difficulty))))
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
}

// ContentSource returns the text the quiz is built from.
func (r QuizRequest) ContentSource() (label, value string) {
	if strings.TrimSpace(r.Topic) != "" {
		return "Topic", r.Topic
	}
	return "Text", r.Text
}

type CourseRequest struct {
	Topic        string `json:"topic" validate:"required,max=500"`
	APIKey       string `json:"api_key" validate:"required"`
	ModulesCount int    `json:"modules_count" validate:"gte=3,lte=10"`
	IncludePDF   bool   `json:"include_pdf"`
}

func (r *CourseRequest) ApplyDefaults() {
	if r.ModulesCount == 0 {
		r.ModulesCount = DefaultModulesCount
	}
}
