package prompts

var levelInstructions = map[string]string{
	"beginner":     "Explain in simple terms, avoid jargon, use analogies and examples",
	"intermediate": "Provide a balanced explanation with some technical details",
	"advanced":     "Include technical details, advanced concepts, and theoretical background",
}

var difficultyTargets = map[string]string{
	"easy":   "basic understanding and recall",
	"medium": "application and analysis",
	"hard":   "synthesis and evaluation",
}

// LevelInstruction returns the style guidance for an explanation level.
// Unknown levels get the intermediate guidance.
func LevelInstruction(level string) string {
	if s, ok := levelInstructions[level]; ok {
		return s
	}
	return levelInstructions["intermediate"]
}

// DifficultyTarget names the cognitive skill a quiz difficulty tests.
func DifficultyTarget(difficulty string) string {
	if s, ok := difficultyTargets[difficulty]; ok {
		return s
	}
	return difficultyTargets["medium"]
}
