package prompts

type PromptName string

const (
	// Single-shot content
	PromptSummarize PromptName = "summarize"
	PromptExplain   PromptName = "explain"
	PromptQuiz      PromptName = "quiz"

	// Course pipeline
	PromptSyllabus     PromptName = "syllabus"
	PromptModuleDetail PromptName = "module_detail"
)
