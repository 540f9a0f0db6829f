package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/learning/content"
	"github.com/yungbote/edubot-backend/internal/learning/prompts"
	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
	"github.com/yungbote/edubot-backend/internal/platform/gemini"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
	"github.com/yungbote/edubot-backend/internal/repos"
)

// ContentService runs every content operation. Requests are assumed validated
// (validation.Request) by the transport that received them.
type ContentService interface {
	Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummarizeResult, error)
	Explain(ctx context.Context, req domain.ExplainRequest) (*domain.ExplainResult, error)
	GenerateQuiz(ctx context.Context, req domain.QuizRequest) (*domain.QuizSet, error)
	GenerateCourse(ctx context.Context, req domain.CourseRequest) (*domain.CourseResult, error)
	ListTopics(ctx context.Context) (*domain.TopicList, error)
	// GetTopic returns (nil, nil) when id is unknown.
	GetTopic(ctx context.Context, id string) (*domain.TopicRecord, error)
}

type ContentConfig struct {
	// ModuleConcurrency > 1 generates course modules in parallel. Order is kept.
	ModuleConcurrency int
}

type contentService struct {
	log       *logger.Logger
	provider  gemini.Client
	topics    repos.TopicRegistry
	notifier  realtime.Notifier
	documents DocumentService
	cfg       ContentConfig
	now       func() time.Time
	newID     func() string
}

// NewContentService wires the orchestrator. notifier and documents may be nil.
func NewContentService(
	baseLog *logger.Logger,
	provider gemini.Client,
	topics repos.TopicRegistry,
	notifier realtime.Notifier,
	documents DocumentService,
	cfg ContentConfig,
) ContentService {
	if notifier == nil {
		notifier = realtime.NewNopNotifier()
	}
	if cfg.ModuleConcurrency < 1 {
		cfg.ModuleConcurrency = 1
	}
	return &contentService{
		log:       baseLog.With("service", "ContentService"),
		provider:  provider,
		topics:    topics,
		notifier:  notifier,
		documents: documents,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

var tracer = otel.Tracer("edubot/services")

func (s *contentService) generate(ctx context.Context, apiKey string, name prompts.PromptName, in prompts.Input) (string, error) {
	p, err := prompts.Build(name, in)
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkgerrors.ErrInvalidArgument, err)
	}
	return s.provider.GenerateText(ctx, apiKey, p.System, p.User)
}

func (s *contentService) Summarize(ctx context.Context, req domain.SummarizeRequest) (*domain.SummarizeResult, error) {
	out, err := s.generate(ctx, req.APIKey, prompts.PromptSummarize, prompts.Input{
		Text:      req.Text,
		MaxLength: req.MaxLength,
	})
	if err != nil {
		return nil, err
	}
	summary := strings.TrimSpace(out)
	return &domain.SummarizeResult{
		Summary:        summary,
		OriginalLength: len(strings.Fields(req.Text)),
		SummaryLength:  len(strings.Fields(summary)),
		ProviderUsed:   s.provider.Name(),
	}, nil
}

func (s *contentService) Explain(ctx context.Context, req domain.ExplainRequest) (*domain.ExplainResult, error) {
	out, err := s.generate(ctx, req.APIKey, prompts.PromptExplain, prompts.Input{
		Concept: req.Concept,
		Level:   string(req.Level),
	})
	if err != nil {
		return nil, err
	}
	return &domain.ExplainResult{
		Explanation:  strings.TrimSpace(out),
		Concept:      req.Concept,
		Level:        req.Level,
		ProviderUsed: s.provider.Name(),
	}, nil
}

func (s *contentService) GenerateQuiz(ctx context.Context, req domain.QuizRequest) (*domain.QuizSet, error) {
	label, source := req.ContentSource()
	out, err := s.generate(ctx, req.APIKey, prompts.PromptQuiz, prompts.Input{
		ContentLabel: label,
		Content:      source,
		NumQuestions: req.NumQuestions,
		Difficulty:   string(req.Difficulty),
	})
	if err != nil {
		return nil, err
	}

	questions, perr := content.ParseQuiz(out, req.NumQuestions)
	if perr != nil {
		s.log.Warn("Quiz output did not parse; using fallback", "error", perr, "count", req.NumQuestions)
		questions = content.FallbackQuiz(source, req.NumQuestions)
	}

	set := &domain.QuizSet{
		Questions:      questions,
		Difficulty:     req.Difficulty,
		TotalQuestions: len(questions),
		ProviderUsed:   s.provider.Name(),
	}
	if label == "Topic" {
		set.Topic = lo.ToPtr(source)
	}
	return set, nil
}

func (s *contentService) GenerateCourse(ctx context.Context, req domain.CourseRequest) (*domain.CourseResult, error) {
	ctx, span := tracer.Start(ctx, "course.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("course.modules", req.ModulesCount))

	prog := &courseProgress{ctx: ctx, n: s.notifier, topic: req.Topic}
	prog.step(realtime.StepInitializing, realtime.PctInitializing, fmt.Sprintf("Starting content generation for '%s'", req.Topic))

	result, err := s.buildCourse(ctx, req, prog)
	if err != nil {
		span.RecordError(err)
		prog.fail(err)
		return nil, err
	}

	prog.step(realtime.StepComplete, realtime.PctComplete, "Content generation completed successfully")
	return result, nil
}

func (s *contentService) buildCourse(ctx context.Context, req domain.CourseRequest, prog *courseProgress) (*domain.CourseResult, error) {
	prog.step(realtime.StepGeneratingSyllabus, realtime.PctSyllabus, "Creating course outline and structure")
	plan, err := s.syllabus(ctx, req)
	if err != nil {
		return nil, err
	}

	prog.step(realtime.StepCreatingModules, realtime.PctModulesStart, "Generating detailed module content")
	modules, err := s.moduleDetails(ctx, req, plan, prog)
	if err != nil {
		return nil, err
	}

	prog.step(realtime.StepGeneratingQuiz, realtime.PctQuiz, "Creating assessment questions")
	qctx, qspan := tracer.Start(ctx, "course.quiz")
	quiz, err := s.GenerateQuiz(qctx, domain.QuizRequest{
		Topic:        req.Topic,
		APIKey:       req.APIKey,
		NumQuestions: domain.CourseQuizQuestions,
		Difficulty:   domain.CourseQuizDifficulty,
	})
	qspan.End()
	if err != nil {
		return nil, err
	}

	prog.step(realtime.StepFinalizing, realtime.PctFinalizing, "Preparing final content")
	rec := &domain.TopicRecord{
		ID:           s.newID(),
		Topic:        req.Topic,
		CreatedAt:    s.now().UTC(),
		ProviderUsed: s.provider.Name(),
		ModulesCount: req.ModulesCount,
	}
	if err := s.topics.Register(ctx, rec); err != nil {
		return nil, fmt.Errorf("register topic: %w", err)
	}
	s.log.Info("Course generated", "topic_id", rec.ID, "modules", len(modules))

	result := &domain.CourseResult{
		Topic:        req.Topic,
		Syllabus:     plan,
		Modules:      modules,
		Quiz:         *quiz,
		ProviderUsed: s.provider.Name(),
	}
	if req.IncludePDF {
		result.PDFURL = s.export(ctx, result)
	}
	return result, nil
}

func (s *contentService) syllabus(ctx context.Context, req domain.CourseRequest) (domain.SyllabusPlan, error) {
	ctx, span := tracer.Start(ctx, "course.syllabus")
	defer span.End()

	out, err := s.generate(ctx, req.APIKey, prompts.PromptSyllabus, prompts.Input{
		Topic:        req.Topic,
		ModulesCount: req.ModulesCount,
	})
	if err != nil {
		return domain.SyllabusPlan{}, err
	}
	plan, perr := content.ParseSyllabus(out, req.Topic, req.ModulesCount)
	if perr != nil {
		s.log.Warn("Syllabus output did not parse; using fallback", "error", perr)
		span.SetAttributes(attribute.Bool("course.fallback", true))
		plan = content.FallbackSyllabus(req.Topic, req.ModulesCount)
	}
	return plan, nil
}

func (s *contentService) moduleDetail(ctx context.Context, req domain.CourseRequest, planned domain.SyllabusModule) (domain.ModuleDetail, error) {
	ctx, span := tracer.Start(ctx, "course.module")
	defer span.End()

	out, err := s.generate(ctx, req.APIKey, prompts.PromptModuleDetail, prompts.Input{
		Topic:             req.Topic,
		ModuleTitle:       planned.Title,
		ModuleDescription: planned.Description,
	})
	if err != nil {
		return domain.ModuleDetail{}, err
	}
	md, perr := content.ParseModuleDetail(out, planned)
	if perr != nil {
		s.log.Warn("Module output did not parse; using fallback", "error", perr, "module", planned.Title)
		md = content.FallbackModuleDetail(planned)
	}
	return md, nil
}

// moduleDetails returns one detail per planned module, in plan order.
func (s *contentService) moduleDetails(ctx context.Context, req domain.CourseRequest, plan domain.SyllabusPlan, prog *courseProgress) ([]domain.ModuleDetail, error) {
	total := len(plan.Modules)
	out := make([]domain.ModuleDetail, total)
	var done int32

	finished := func(title string) {
		n := int(atomic.AddInt32(&done, 1))
		if n < total {
			prog.step(realtime.StepCreatingModules, realtime.ModuleProgress(n, total),
				fmt.Sprintf("Generated module %d of %d: %s", n, total, title))
		}
	}

	if s.cfg.ModuleConcurrency <= 1 {
		for i, planned := range plan.Modules {
			md, err := s.moduleDetail(ctx, req, planned)
			if err != nil {
				return nil, err
			}
			out[i] = md
			finished(planned.Title)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ModuleConcurrency)
	for i := range plan.Modules {
		i, planned := i, plan.Modules[i]
		g.Go(func() error {
			md, err := s.moduleDetail(gctx, req, planned)
			if err != nil {
				return err
			}
			out[i] = md
			finished(planned.Title)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// export renders and publishes the course document. Failures are logged and
// leave the reference unset.
func (s *contentService) export(ctx context.Context, course *domain.CourseResult) *string {
	if s.documents == nil {
		s.log.Warn("Document export requested but no document service is configured")
		return nil
	}
	ref, err := s.documents.Export(ctx, course)
	if err != nil {
		s.log.Error("Document export failed", "topic", course.Topic, "error", err)
		return nil
	}
	return &ref
}

func (s *contentService) ListTopics(ctx context.Context) (*domain.TopicList, error) {
	all, err := s.topics.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.TopicList{Topics: all, Total: len(all)}, nil
}

func (s *contentService) GetTopic(ctx context.Context, id string) (*domain.TopicRecord, error) {
	rec, err := s.topics.Get(ctx, id)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

type courseProgress struct {
	ctx   context.Context
	n     realtime.Notifier
	topic string
	last  atomic.Int32
}

func (p *courseProgress) step(step string, pct int, msg string) {
	p.last.Store(int32(pct))
	p.n.Notify(p.ctx, realtime.Progress{Topic: p.topic, Step: step, Progress: pct, Message: msg})
}

func (p *courseProgress) fail(err error) {
	p.n.Notify(p.ctx, realtime.Progress{
		Topic:    p.topic,
		Step:     realtime.StepFailed,
		Progress: int(p.last.Load()),
		Message:  "Content generation failed",
		Error:    failureReason(err),
	})
}

// failureReason is the client-safe cause carried by a Failed progress event.
func failureReason(err error) string {
	switch {
	case errors.Is(err, pkgerrors.ErrCredentialInvalid):
		return "invalid api key"
	case errors.Is(err, pkgerrors.ErrProviderUnavailable):
		return "llm provider error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal error"
	}
}
