package graph

import (
	"errors"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/platform/apierr"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/services"
	"github.com/yungbote/edubot-backend/internal/validation"
)

type Deps struct {
	Log     *logger.Logger
	Content services.ContentService
	Now     func() time.Time
}

type resolver struct {
	log     *logger.Logger
	content services.ContentService
	now     func() time.Time
}

// NewSchema builds the GraphQL schema over the content service.
func NewSchema(deps Deps) (graphql.Schema, error) {
	if deps.Content == nil {
		return graphql.Schema{}, errors.New("graph: content service is required")
	}
	r := &resolver{
		log:     deps.Log.With("component", "GraphQL"),
		content: deps.Content,
		now:     deps.Now,
	}
	if r.now == nil {
		r.now = time.Now
	}
	t := newTypes()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{Type: nonNull(t.health), Resolve: r.health},
			"topics": &graphql.Field{Type: nonNull(t.topics), Resolve: r.topics},
			"topic": &graphql.Field{
				Type:    t.topic,
				Args:    graphql.FieldConfigArgument{"id": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)}},
				Resolve: r.topic,
			},
			"apiInfo": &graphql.Field{Type: nonNull(t.apiInfo), Resolve: r.apiInfo},
		},
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"summarize":    mutationField(t.summarizeResult, t.summarizeInput, r.summarize),
			"explain":      mutationField(t.explainResult, t.explainInput, r.explain),
			"generateQuiz": mutationField(t.quizResult, t.quizInput, r.generateQuiz),
			"educate":      mutationField(t.educateResult, t.educateInput, r.educate),
		},
	})
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func mutationField(out *graphql.Union, in *graphql.InputObject, fn graphql.FieldResolveFn) *graphql.Field {
	return &graphql.Field{
		Type:    nonNull(out),
		Args:    graphql.FieldConfigArgument{"input": &graphql.ArgumentConfig{Type: nonNull(in)}},
		Resolve: fn,
	}
}

// toPayloadError maps a service or validation error onto the Error payload.
// Unclassified failures never carry their text to the caller.
func toPayloadError(err error) *payloadError {
	ae := apierr.From(err)
	switch ae.Code {
	case apierr.CodeInvalidAPIKey:
		return &payloadError{Code: CodeInvalidAPIKey, Message: "Invalid API key", Details: "Please check your API key and try again"}
	case apierr.CodeProviderError:
		return &payloadError{Code: CodeLLMError, Message: "LLM provider error", Details: ae.Error()}
	case apierr.CodeValidationError:
		return &payloadError{Code: CodeValidationError, Message: "Validation error", Details: ae.Error()}
	default:
		return &payloadError{Code: CodeInternalError, Message: apierr.InternalMessage}
	}
}

func (r *resolver) fail(op string, err error) (interface{}, error) {
	pe := toPayloadError(err)
	if pe.Code == CodeInternalError {
		r.log.Error("graphql mutation failed", "operation", op, "error", err)
	} else {
		r.log.Warn("graphql mutation failed", "operation", op, "code", pe.Code, "error", err)
	}
	return pe, nil
}

func inputOf(p graphql.ResolveParams) map[string]interface{} {
	in, _ := p.Args["input"].(map[string]interface{})
	return in
}

func str(in map[string]interface{}, key string) string {
	s, _ := in[key].(string)
	return s
}

func num(in map[string]interface{}, key string) int {
	n, _ := in[key].(int)
	return n
}

func flag(in map[string]interface{}, key string) bool {
	b, _ := in[key].(bool)
	return b
}

func (r *resolver) health(p graphql.ResolveParams) (interface{}, error) {
	return health{
		Status:    "healthy",
		Message:   domain.HealthMessage,
		Version:   domain.APIVersion,
		Timestamp: r.now().UTC(),
	}, nil
}

func (r *resolver) topics(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.content.ListTopics(p.Context)
	if err != nil {
		r.log.Warn("list topics failed", "error", err)
		return &domain.TopicList{Topics: []*domain.TopicRecord{}}, nil
	}
	return list, nil
}

func (r *resolver) topic(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	rec, err := r.content.GetTopic(p.Context, id)
	if err != nil || rec == nil {
		return nil, nil
	}
	return rec, nil
}

func (r *resolver) apiInfo(p graphql.ResolveParams) (interface{}, error) {
	return domain.Info(), nil
}

func (r *resolver) summarize(p graphql.ResolveParams) (interface{}, error) {
	in := inputOf(p)
	req := domain.SummarizeRequest{
		Text:      str(in, "text"),
		APIKey:    str(in, "api_key"),
		MaxLength: num(in, "max_length"),
	}
	if err := validation.Request(&req); err != nil {
		return r.fail("summarize", err)
	}
	out, err := r.content.Summarize(p.Context, req)
	if err != nil {
		return r.fail("summarize", err)
	}
	return out, nil
}

func (r *resolver) explain(p graphql.ResolveParams) (interface{}, error) {
	in := inputOf(p)
	level, _ := in["level"].(domain.ExplanationLevel)
	req := domain.ExplainRequest{
		Concept: str(in, "concept"),
		APIKey:  str(in, "api_key"),
		Level:   level,
	}
	if err := validation.Request(&req); err != nil {
		return r.fail("explain", err)
	}
	out, err := r.content.Explain(p.Context, req)
	if err != nil {
		return r.fail("explain", err)
	}
	return out, nil
}

func (r *resolver) generateQuiz(p graphql.ResolveParams) (interface{}, error) {
	in := inputOf(p)
	difficulty, _ := in["difficulty"].(domain.Difficulty)
	req := domain.QuizRequest{
		Topic:        str(in, "topic"),
		Text:         str(in, "text"),
		APIKey:       str(in, "api_key"),
		NumQuestions: num(in, "num_questions"),
		Difficulty:   difficulty,
	}
	if err := validation.Request(&req); err != nil {
		return r.fail("generateQuiz", err)
	}
	out, err := r.content.GenerateQuiz(p.Context, req)
	if err != nil {
		return r.fail("generateQuiz", err)
	}
	return out, nil
}

func (r *resolver) educate(p graphql.ResolveParams) (interface{}, error) {
	in := inputOf(p)
	req := domain.CourseRequest{
		Topic:        str(in, "topic"),
		APIKey:       str(in, "api_key"),
		ModulesCount: num(in, "modules_count"),
		IncludePDF:   flag(in, "include_pdf"),
	}
	if err := validation.Request(&req); err != nil {
		return r.fail("educate", err)
	}
	out, err := r.content.GenerateCourse(p.Context, req)
	if err != nil {
		return r.fail("educate", err)
	}
	return &coursePayload{
		Topic:        out.Topic,
		Syllabus:     out.Syllabus,
		Modules:      out.Modules,
		Quiz:         out.Quiz,
		PDFURL:       out.PDFURL,
		ProviderUsed: out.ProviderUsed,
		GeneratedAt:  r.now().UTC(),
		IncludePDF:   req.IncludePDF,
	}, nil
}
