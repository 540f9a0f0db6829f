package prompts

// RegisterAll registers the built-in prompts. Build calls it once on first use.
func RegisterAll() {
	RegisterSpec(Spec{
		Name:    PromptSummarize,
		Version: 1,
		System: `
You are an expert at creating concise, accurate summaries. Provide a clear and informative summary that captures the main points.`,
		User: `
Please summarize the following text in approximately {{.MaxLength}} words or less:

Text: {{.Text}}

Requirements:
- Keep the summary concise and informative
- Capture the main ideas and key points
- Make it easy to understand`,
		Validators: []Validator{
			RequireNonEmpty("Text", func(in Input) string { return in.Text }),
			RequirePositive("MaxLength", func(in Input) int { return in.MaxLength }),
		},
	})

	RegisterSpec(Spec{
		Name:    PromptExplain,
		Version: 1,
		System: `
You are an expert educator. Explain concepts clearly at the {{.Level}} level. {{levelInstruction .Level}}. Always provide practical examples when possible.`,
		User: `
Please explain the concept: "{{.Concept}}"

Level: {{.Level}}

Requirements:
- Make the explanation appropriate for the {{.Level}} level
- Include practical examples
- Structure the explanation clearly
- Make it engaging and easy to understand`,
		Validators: []Validator{
			RequireNonEmpty("Concept", func(in Input) string { return in.Concept }),
			RequireOneOf("Level", func(in Input) string { return in.Level }, "beginner", "intermediate", "advanced"),
		},
	})

	RegisterSpec(Spec{
		Name:    PromptQuiz,
		Version: 1,
		JSON:    true,
		System: `
You are an expert quiz creator. Generate multiple-choice questions that test {{difficultyTarget .Difficulty}}. Each question should have 4 options with one correct answer. Always provide explanations for the correct answers.`,
		User: `
Create {{.NumQuestions}} multiple-choice questions based on the following:

{{.ContentLabel}}: {{.Content}}

Difficulty: {{.Difficulty}}

Requirements:
- Each question should have exactly 4 options (A, B, C, D)
- Only one correct answer per question
- Include an explanation for each correct answer
- Questions should test {{difficultyTarget .Difficulty}}

Format your response as valid JSON:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_answer": 0,
      "explanation": "Explanation of the correct answer"
    }
  ]
}`,
		Validators: []Validator{
			RequireNonEmpty("Content", func(in Input) string { return in.Content }),
			RequirePositive("NumQuestions", func(in Input) int { return in.NumQuestions }),
			RequireOneOf("Difficulty", func(in Input) string { return in.Difficulty }, "easy", "medium", "hard"),
		},
	})

	RegisterSpec(Spec{
		Name:    PromptSyllabus,
		Version: 1,
		JSON:    true,
		System: `
You are an expert curriculum designer. Create comprehensive syllabi that provide clear learning paths with well-structured modules and realistic time estimates.`,
		User: `
Create a comprehensive syllabus for the topic: "{{.Topic}}"

Requirements:
- Create exactly {{.ModulesCount}} modules
- Include an overview of the entire topic
- Provide learning objectives
- Estimate duration for each module and total course
- Make modules progressive (building on each other)

Format your response as valid JSON:
{
  "overview": "Brief overview of the topic and what students will learn",
  "modules": [
    {
      "title": "Module 1 Title",
      "description": "What this module covers"
    }
  ],
  "total_duration": "Total estimated time (e.g., '4 weeks', '20 hours')",
  "learning_objectives": ["Objective 1", "Objective 2", "Objective 3"]
}`,
		Validators: []Validator{
			RequireNonEmpty("Topic", func(in Input) string { return in.Topic }),
			RequirePositive("ModulesCount", func(in Input) int { return in.ModulesCount }),
		},
	})

	RegisterSpec(Spec{
		Name:    PromptModuleDetail,
		Version: 1,
		JSON:    true,
		System: `
You are an expert educator creating detailed learning content. Provide comprehensive, well-structured content with practical examples.`,
		User: `
Create detailed learning content for this module:

Topic: {{.Topic}}
Module Title: {{.ModuleTitle}}
Module Description: {{.ModuleDescription}}

Requirements:
- Provide comprehensive content that covers the module thoroughly
- Include key points (5-7 bullet points)
- Estimate realistic duration for studying this module
- Make content engaging and informative
- Include practical examples where relevant

Format your response as valid JSON:
{
  "content": "Detailed content for the module (2-3 paragraphs)",
  "key_points": ["Key point 1", "Key point 2", "Key point 3"],
  "estimated_duration": "Estimated study time (e.g., '2 hours', '1 week')"
}`,
		Validators: []Validator{
			RequireNonEmpty("Topic", func(in Input) string { return in.Topic }),
			RequireNonEmpty("ModuleTitle", func(in Input) string { return in.ModuleTitle }),
		},
	})
}
