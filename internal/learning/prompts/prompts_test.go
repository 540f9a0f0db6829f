package prompts

import (
	"strings"
	"testing"
)

func TestBuildRendersEveryPrompt(t *testing.T) {
	cases := []struct {
		name PromptName
		in   Input
		want []string
		json bool
	}{
		{PromptSummarize, Input{Text: "The mitochondria is the powerhouse.", MaxLength: 80}, []string{"approximately 80 words", "powerhouse"}, false},
		{PromptExplain, Input{Concept: "Recursion", Level: "beginner"}, []string{`"Recursion"`, "Level: beginner", "avoid jargon"}, false},
		{PromptQuiz, Input{ContentLabel: "Topic", Content: "Photosynthesis", NumQuestions: 3, Difficulty: "hard"}, []string{"Create 3 multiple-choice", "Topic: Photosynthesis", "synthesis and evaluation", `"correct_answer": 0`}, true},
		{PromptSyllabus, Input{Topic: "Graph Theory", ModulesCount: 4}, []string{"exactly 4 modules", `"Graph Theory"`, "learning_objectives"}, true},
		{PromptModuleDetail, Input{Topic: "Graph Theory", ModuleTitle: "Trees", ModuleDescription: "Acyclic graphs"}, []string{"Module Title: Trees", "Module Description: Acyclic graphs", "key_points"}, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.name), func(t *testing.T) {
			p, err := Build(tc.name, tc.in)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if p.System == "" || p.User == "" {
				t.Fatalf("empty render: %+v", p)
			}
			full := p.System + "\n" + p.User
			for _, w := range tc.want {
				if !strings.Contains(full, w) {
					t.Fatalf("missing %q in:\n%s", w, full)
				}
			}
			if p.JSON != tc.json {
				t.Fatalf("json flag: got=%v want=%v", p.JSON, tc.json)
			}
		})
	}
}

func TestBuildValidatesInput(t *testing.T) {
	if _, err := Build(PromptSummarize, Input{MaxLength: 100}); err == nil {
		t.Fatalf("expected missing text error")
	}
	if _, err := Build(PromptSyllabus, Input{Topic: "x"}); err == nil {
		t.Fatalf("expected missing modules count error")
	}
	if _, err := Build(PromptExplain, Input{Concept: "x", Level: "expert"}); err == nil {
		t.Fatalf("expected unknown level error")
	}
	if _, err := Build(PromptQuiz, Input{ContentLabel: "Topic", Content: "x", NumQuestions: 2, Difficulty: "brutal"}); err == nil {
		t.Fatalf("expected unknown difficulty error")
	}
	if _, err := Build(PromptName("nope"), Input{}); err == nil {
		t.Fatalf("expected unknown prompt error")
	}
}

func TestFingerprintStable(t *testing.T) {
	in := Input{Concept: "Entropy", Level: "advanced"}
	a, err := Build(PromptExplain, in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, _ := Build(PromptExplain, in)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("fingerprint changed between identical builds")
	}
	c, _ := Build(PromptExplain, Input{Concept: "Entropy", Level: "beginner"})
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("fingerprint should depend on rendered text")
	}
}

func TestLevelAndDifficultyDefaults(t *testing.T) {
	if LevelInstruction("unknown") != LevelInstruction("intermediate") {
		t.Fatalf("unknown level should fall back to intermediate")
	}
	if DifficultyTarget("") != "application and analysis" {
		t.Fatalf("unexpected default difficulty target: %q", DifficultyTarget(""))
	}
}
