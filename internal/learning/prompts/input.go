package prompts

// Input is a superset of all fields any prompt might need.
// Missing fields render empty strings (templates use missingkey=zero).
type Input struct {
	// Summarize
	Text      string
	MaxLength int

	// Explain
	Concept string
	Level   string

	// Quiz. ContentLabel is "Topic" or "Text".
	ContentLabel string
	Content      string
	NumQuestions int
	Difficulty   string

	// Course
	Topic             string
	ModulesCount      int
	ModuleTitle       string
	ModuleDescription string
}
