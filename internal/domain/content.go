package domain

type ExplanationLevel string

const (
	LevelBeginner     ExplanationLevel = "beginner"
	LevelIntermediate ExplanationLevel = "intermediate"
	LevelAdvanced     ExplanationLevel = "advanced"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizOptionCount is the fixed number of options on every question.
const QuizOptionCount = 4

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuizSet struct {
	Questions      []QuizQuestion `json:"questions"`
	Topic          *string        `json:"topic"`
	Difficulty     Difficulty     `json:"difficulty"`
	TotalQuestions int            `json:"total_questions"`
	ProviderUsed   string         `json:"provider_used"`
}

type SyllabusModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SyllabusPlan struct {
	Topic              string           `json:"topic"`
	Overview           string           `json:"overview"`
	Modules            []SyllabusModule `json:"modules"`
	TotalDuration      string           `json:"total_duration"`
	LearningObjectives []string         `json:"learning_objectives"`
}

type ModuleDetail struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Content           string   `json:"content"`
	KeyPoints         []string `json:"key_points"`
	EstimatedDuration string   `json:"estimated_duration"`
}

// CourseResult is the assembled output of a full-course generation. Modules has
// the same length and order as Syllabus.Modules.
type CourseResult struct {
	Topic        string         `json:"topic"`
	Syllabus     SyllabusPlan   `json:"syllabus"`
	Modules      []ModuleDetail `json:"modules"`
	Quiz         QuizSet        `json:"quiz"`
	PDFURL       *string        `json:"pdf_url"`
	ProviderUsed string         `json:"provider_used"`
}

type SummarizeResult struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
	ProviderUsed   string `json:"provider_used"`
}

type ExplainResult struct {
	Explanation  string           `json:"explanation"`
	Concept      string           `json:"concept"`
	Level        ExplanationLevel `json:"level"`
	ProviderUsed string           `json:"provider_used"`
}
