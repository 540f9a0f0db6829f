package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/yungbote/edubot-backend/internal/domain"
	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
	"github.com/yungbote/edubot-backend/internal/repos"
)

type fakeProvider struct {
	calls   atomic.Int32
	respond func(system, user string) (string, error)
}

func (f *fakeProvider) GenerateText(ctx context.Context, apiKey, system, user string) (string, error) {
	f.calls.Add(1)
	return f.respond(system, user)
}

func (f *fakeProvider) Name() string { return "gemini" }

type recordingNotifier struct {
	mu     sync.Mutex
	events []realtime.Progress
}

func (r *recordingNotifier) Notify(ctx context.Context, p realtime.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, p)
}

func (r *recordingNotifier) steps() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Step)
	}
	return out
}

type fakeDocuments struct {
	ref string
	err error
}

func (f fakeDocuments) Export(ctx context.Context, course *domain.CourseResult) (string, error) {
	return f.ref, f.err
}

func lineValue(user, prefix string) string {
	for _, line := range strings.Split(user, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

func validQuiz(n int) string {
	qs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(`{"question":"Real question %d?","options":["w","x","y","z"],"correct_answer":1,"explanation":"x is right"}`, i+1))
	}
	return "```json\n{\"questions\":[" + strings.Join(qs, ",") + "]}\n```"
}

func validSyllabus(n int) string {
	mods := make([]string, 0, n)
	for i := 0; i < n; i++ {
		mods = append(mods, fmt.Sprintf(`{"title":"Unit %d","description":"About unit %d"}`, i+1, i+1))
	}
	return `{"overview":"A real overview","modules":[` + strings.Join(mods, ",") + `],"total_duration":"3 weeks","learning_objectives":["Learn"]}`
}

// wellBehaved answers every prompt with parseable output.
func wellBehaved(system, user string) (string, error) {
	switch {
	case strings.Contains(user, "Create a comprehensive syllabus"):
		var n int
		fmt.Sscanf(lineValue(user, "- Create exactly "), "%d", &n)
		return validSyllabus(n), nil
	case strings.Contains(user, "Module Title:"):
		title := lineValue(user, "Module Title: ")
		return fmt.Sprintf(`{"content":"Body of %s","key_points":["k1","k2"],"estimated_duration":"2 hours"}`, title), nil
	case strings.Contains(user, "multiple-choice questions"):
		var n int
		fmt.Sscanf(lineValue(user, "Create "), "%d", &n)
		return validQuiz(n), nil
	default:
		return "  Plain text answer with five words.  ", nil
	}
}

func newTestService(t *testing.T, p *fakeProvider, cfg ContentConfig, docs DocumentService) (ContentService, repos.TopicRegistry, *recordingNotifier) {
	t.Helper()
	reg := repos.NewMemoryTopicRegistry(logger.NewNop())
	n := &recordingNotifier{}
	return NewContentService(logger.NewNop(), p, reg, n, docs, cfg), reg, n
}

func TestSummarizeAndExplain(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeProvider{respond: wellBehaved}, ContentConfig{}, nil)
	ctx := context.Background()

	sum, err := svc.Summarize(ctx, domain.SummarizeRequest{Text: "one two three four five six seven", APIKey: "k", MaxLength: 50})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Summary != "Plain text answer with five words." || sum.OriginalLength != 7 || sum.SummaryLength != 6 || sum.ProviderUsed != "gemini" {
		t.Fatalf("summary: %+v", sum)
	}

	exp, err := svc.Explain(ctx, domain.ExplainRequest{Concept: "Recursion", APIKey: "k", Level: domain.LevelBeginner})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if exp.Concept != "Recursion" || exp.Level != domain.LevelBeginner || exp.Explanation == "" {
		t.Fatalf("explain: %+v", exp)
	}
}

func TestGenerateQuizParsesOrFallsBack(t *testing.T) {
	ctx := context.Background()

	svc, _, _ := newTestService(t, &fakeProvider{respond: wellBehaved}, ContentConfig{}, nil)
	set, err := svc.GenerateQuiz(ctx, domain.QuizRequest{Topic: "Photosynthesis", APIKey: "k", NumQuestions: 3, Difficulty: domain.DifficultyHard})
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if set.TotalQuestions != 3 || set.Questions[0].Question != "Real question 1?" || set.Topic == nil || *set.Topic != "Photosynthesis" {
		t.Fatalf("parsed quiz: %+v", set)
	}

	garbled := &fakeProvider{respond: func(string, string) (string, error) { return "Sure! Here are some questions...", nil }}
	svc, _, _ = newTestService(t, garbled, ContentConfig{}, nil)
	set, err = svc.GenerateQuiz(ctx, domain.QuizRequest{Text: "Chlorophyll absorbs light.", APIKey: "k", NumQuestions: 5, Difficulty: domain.DifficultyEasy})
	if err != nil {
		t.Fatalf("GenerateQuiz fallback: %v", err)
	}
	if set.TotalQuestions != 5 || len(set.Questions) != 5 {
		t.Fatalf("fallback count: %d", set.TotalQuestions)
	}
	if set.Topic != nil {
		t.Fatalf("text-sourced quiz should have no topic")
	}
	if set.Questions[0].Question != "Question 1 about Chlorophyll absorbs light.?" || set.Questions[4].CorrectAnswer != 0 {
		t.Fatalf("fallback question: %+v", set.Questions[0])
	}
}

func TestGenerateQuizPropagatesCredentialError(t *testing.T) {
	bad := &fakeProvider{respond: func(string, string) (string, error) {
		return "", fmt.Errorf("%w: 401", pkgerrors.ErrCredentialInvalid)
	}}
	svc, _, _ := newTestService(t, bad, ContentConfig{}, nil)
	_, err := svc.GenerateQuiz(context.Background(), domain.QuizRequest{Topic: "x", APIKey: "k", NumQuestions: 2, Difficulty: domain.DifficultyMedium})
	if !errors.Is(err, pkgerrors.ErrCredentialInvalid) {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestGenerateCourseAllFallbacks(t *testing.T) {
	p := &fakeProvider{respond: func(string, string) (string, error) { return "no json here", nil }}
	svc, reg, notes := newTestService(t, p, ContentConfig{}, nil)

	res, err := svc.GenerateCourse(context.Background(), domain.CourseRequest{Topic: "Rust", APIKey: "k", ModulesCount: 3})
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if got := p.calls.Load(); got != 5 {
		t.Fatalf("provider calls: want 5 (syllabus + 3 modules + quiz), got %d", got)
	}
	if len(res.Syllabus.Modules) != 3 || len(res.Modules) != 3 {
		t.Fatalf("module counts: plan=%d detail=%d", len(res.Syllabus.Modules), len(res.Modules))
	}
	for i := range res.Modules {
		if res.Modules[i].Title != res.Syllabus.Modules[i].Title {
			t.Fatalf("module %d title mismatch: %q vs %q", i, res.Modules[i].Title, res.Syllabus.Modules[i].Title)
		}
	}
	if res.Modules[2].Title != "Module 3: Rust - Part 3" || res.Modules[0].EstimatedDuration != "2-3 hours" {
		t.Fatalf("fallback modules: %+v", res.Modules)
	}
	if res.Quiz.TotalQuestions != domain.CourseQuizQuestions || res.Quiz.Difficulty != domain.DifficultyMedium {
		t.Fatalf("course quiz: %+v", res.Quiz)
	}
	if res.PDFURL != nil {
		t.Fatalf("pdf_url should be unset when not requested")
	}

	list, _ := svc.ListTopics(context.Background())
	if list.Total != 1 || list.Topics[0].Topic != "Rust" || list.Topics[0].ModulesCount != 3 || len(list.Topics[0].ID) != 36 {
		t.Fatalf("registry after course: %+v", list.Topics)
	}
	got, err := svc.GetTopic(context.Background(), list.Topics[0].ID)
	if err != nil || got == nil || got.Topic != "Rust" {
		t.Fatalf("GetTopic: %+v %v", got, err)
	}
	_ = reg

	steps := notes.steps()
	if steps[0] != realtime.StepInitializing || steps[len(steps)-1] != realtime.StepComplete {
		t.Fatalf("progress steps: %v", steps)
	}
}

func TestGenerateCourseFailureLeavesRegistryUntouched(t *testing.T) {
	var moduleCalls atomic.Int32
	p := &fakeProvider{respond: func(system, user string) (string, error) {
		if strings.Contains(user, "Module Title:") && moduleCalls.Add(1) == 2 {
			return "", fmt.Errorf("%w: key revoked", pkgerrors.ErrCredentialInvalid)
		}
		return wellBehaved(system, user)
	}}
	svc, reg, notes := newTestService(t, p, ContentConfig{}, nil)

	res, err := svc.GenerateCourse(context.Background(), domain.CourseRequest{Topic: "Go", APIKey: "k", ModulesCount: 4})
	if !errors.Is(err, pkgerrors.ErrCredentialInvalid) {
		t.Fatalf("expected credential error, got %v", err)
	}
	if res != nil {
		t.Fatalf("no partial result expected")
	}
	all, _ := reg.ListAll(context.Background())
	if len(all) != 0 {
		t.Fatalf("registry mutated on failure: %+v", all)
	}
	if p.calls.Load() != 3 {
		t.Fatalf("generation should stop at the failing module, calls=%d", p.calls.Load())
	}
	steps := notes.steps()
	if steps[len(steps)-1] != realtime.StepFailed {
		t.Fatalf("last step should be Failed: %v", steps)
	}
	if last := notes.events[len(notes.events)-1]; last.Error != "invalid api key" {
		t.Fatalf("failure reason: %q", last.Error)
	}
}

func TestGenerateCourseParallelKeepsPlanOrder(t *testing.T) {
	p := &fakeProvider{respond: wellBehaved}
	svc, _, _ := newTestService(t, p, ContentConfig{ModuleConcurrency: 4}, nil)

	res, err := svc.GenerateCourse(context.Background(), domain.CourseRequest{Topic: "Algebra", APIKey: "k", ModulesCount: 8})
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	for i, m := range res.Modules {
		want := fmt.Sprintf("Unit %d", i+1)
		if m.Title != want || m.Content != "Body of "+want {
			t.Fatalf("module %d out of order: %+v", i, m)
		}
	}
	if res.Syllabus.Overview != "A real overview" || res.Quiz.Questions[0].Question != "Real question 1?" {
		t.Fatalf("parsed course: %+v", res.Syllabus)
	}
}

func TestGenerateCourseDocumentExport(t *testing.T) {
	req := domain.CourseRequest{Topic: "Chemistry", APIKey: "k", ModulesCount: 3, IncludePDF: true}

	svc, _, _ := newTestService(t, &fakeProvider{respond: wellBehaved}, ContentConfig{}, fakeDocuments{ref: "/api/v1/download/pdf/education_chemistry.pdf"})
	res, err := svc.GenerateCourse(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if res.PDFURL == nil || *res.PDFURL != "/api/v1/download/pdf/education_chemistry.pdf" {
		t.Fatalf("pdf_url: %v", res.PDFURL)
	}

	svc, reg, _ := newTestService(t, &fakeProvider{respond: wellBehaved}, ContentConfig{}, fakeDocuments{err: errors.New("disk full")})
	res, err = svc.GenerateCourse(context.Background(), req)
	if err != nil {
		t.Fatalf("export failure must not fail the course: %v", err)
	}
	if res.PDFURL != nil {
		t.Fatalf("pdf_url should stay unset on export failure")
	}
	if all, _ := reg.ListAll(context.Background()); len(all) != 1 {
		t.Fatalf("course should still be registered, got %d", len(all))
	}
}

func TestGetTopicUnknownIsAbsent(t *testing.T) {
	svc, _, _ := newTestService(t, &fakeProvider{respond: wellBehaved}, ContentConfig{}, nil)
	rec, err := svc.GetTopic(context.Background(), "does-not-exist")
	if err != nil || rec != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", rec, err)
	}
}
