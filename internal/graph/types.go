package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/yungbote/edubot-backend/internal/domain"
)

// Error codes carried by the Error member of every mutation payload.
const (
	CodeInvalidAPIKey   = "INVALID_API_KEY"
	CodeLLMError        = "LLM_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

type payloadError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

type health struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// coursePayload flattens a CourseResult so the default resolver can read it.
type coursePayload struct {
	Topic        string                `json:"topic"`
	Syllabus     domain.SyllabusPlan   `json:"syllabus"`
	Modules      []domain.ModuleDetail `json:"modules"`
	Quiz         domain.QuizSet        `json:"quiz"`
	PDFURL       *string               `json:"pdf_url"`
	ProviderUsed string                `json:"provider_used"`
	GeneratedAt  time.Time             `json:"generated_at"`
	IncludePDF   bool                  `json:"include_pdf"`
}

type types struct {
	level      *graphql.Enum
	difficulty *graphql.Enum

	health   *graphql.Object
	topic    *graphql.Object
	topics   *graphql.Object
	apiInfo  *graphql.Object
	errorObj *graphql.Object

	summarize *graphql.Object
	explain   *graphql.Object
	question  *graphql.Object
	quiz      *graphql.Object
	module    *graphql.Object
	plan      *graphql.Object
	course    *graphql.Object

	summarizeResult *graphql.Union
	explainResult   *graphql.Union
	quizResult      *graphql.Union
	educateResult   *graphql.Union

	summarizeInput *graphql.InputObject
	explainInput   *graphql.InputObject
	quizInput      *graphql.InputObject
	educateInput   *graphql.InputObject
}

func nonNull(t graphql.Type) graphql.Type { return graphql.NewNonNull(t) }

func listOf(t graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}

func newTypes() *types {
	t := &types{}

	t.level = graphql.NewEnum(graphql.EnumConfig{
		Name: "ExplanationLevel",
		Values: graphql.EnumValueConfigMap{
			"BEGINNER":     &graphql.EnumValueConfig{Value: domain.LevelBeginner},
			"INTERMEDIATE": &graphql.EnumValueConfig{Value: domain.LevelIntermediate},
			"ADVANCED":     &graphql.EnumValueConfig{Value: domain.LevelAdvanced},
		},
	})
	t.difficulty = graphql.NewEnum(graphql.EnumConfig{
		Name: "Difficulty",
		Values: graphql.EnumValueConfigMap{
			"EASY":   &graphql.EnumValueConfig{Value: domain.DifficultyEasy},
			"MEDIUM": &graphql.EnumValueConfig{Value: domain.DifficultyMedium},
			"HARD":   &graphql.EnumValueConfig{Value: domain.DifficultyHard},
		},
	})

	t.health = graphql.NewObject(graphql.ObjectConfig{
		Name: "HealthStatus",
		Fields: graphql.Fields{
			"status":    &graphql.Field{Type: nonNull(graphql.String)},
			"message":   &graphql.Field{Type: nonNull(graphql.String)},
			"version":   &graphql.Field{Type: nonNull(graphql.String)},
			"timestamp": &graphql.Field{Type: nonNull(graphql.DateTime)},
		},
	})
	t.topic = graphql.NewObject(graphql.ObjectConfig{
		Name: "Topic",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: nonNull(graphql.ID)},
			"topic":         &graphql.Field{Type: nonNull(graphql.String)},
			"created_at":    &graphql.Field{Type: nonNull(graphql.DateTime)},
			"provider_used": &graphql.Field{Type: nonNull(graphql.String)},
			"modules_count": &graphql.Field{Type: nonNull(graphql.Int)},
		},
	})
	t.topics = graphql.NewObject(graphql.ObjectConfig{
		Name: "TopicsResponse",
		Fields: graphql.Fields{
			"topics": &graphql.Field{Type: listOf(t.topic)},
			"total":  &graphql.Field{Type: nonNull(graphql.Int)},
		},
	})
	t.apiInfo = graphql.NewObject(graphql.ObjectConfig{
		Name: "ApiInfo",
		Fields: graphql.Fields{
			"name":        &graphql.Field{Type: nonNull(graphql.String)},
			"version":     &graphql.Field{Type: nonNull(graphql.String)},
			"description": &graphql.Field{Type: nonNull(graphql.String)},
			"endpoints":   &graphql.Field{Type: listOf(graphql.String)},
			"features":    &graphql.Field{Type: listOf(graphql.String)},
		},
	})
	t.errorObj = graphql.NewObject(graphql.ObjectConfig{
		Name: "Error",
		Fields: graphql.Fields{
			"code":    &graphql.Field{Type: nonNull(graphql.String)},
			"message": &graphql.Field{Type: nonNull(graphql.String)},
			"details": &graphql.Field{Type: graphql.String},
		},
	})

	t.summarize = graphql.NewObject(graphql.ObjectConfig{
		Name: "SummarizeResponse",
		Fields: graphql.Fields{
			"summary":         &graphql.Field{Type: nonNull(graphql.String)},
			"original_length": &graphql.Field{Type: nonNull(graphql.Int)},
			"summary_length":  &graphql.Field{Type: nonNull(graphql.Int)},
			"provider_used":   &graphql.Field{Type: nonNull(graphql.String)},
		},
	})
	t.explain = graphql.NewObject(graphql.ObjectConfig{
		Name: "ExplainResponse",
		Fields: graphql.Fields{
			"explanation":   &graphql.Field{Type: nonNull(graphql.String)},
			"concept":       &graphql.Field{Type: nonNull(graphql.String)},
			"level":         &graphql.Field{Type: nonNull(t.level)},
			"provider_used": &graphql.Field{Type: nonNull(graphql.String)},
		},
	})
	t.question = graphql.NewObject(graphql.ObjectConfig{
		Name: "QuizQuestion",
		Fields: graphql.Fields{
			"question":       &graphql.Field{Type: nonNull(graphql.String)},
			"options":        &graphql.Field{Type: listOf(graphql.String)},
			"correct_answer": &graphql.Field{Type: nonNull(graphql.Int)},
			"explanation":    &graphql.Field{Type: nonNull(graphql.String)},
		},
	})
	t.quiz = graphql.NewObject(graphql.ObjectConfig{
		Name: "QuizResponse",
		Fields: graphql.Fields{
			"questions":       &graphql.Field{Type: listOf(t.question)},
			"topic":           &graphql.Field{Type: graphql.String},
			"difficulty":      &graphql.Field{Type: nonNull(t.difficulty)},
			"total_questions": &graphql.Field{Type: nonNull(graphql.Int)},
			"provider_used":   &graphql.Field{Type: nonNull(graphql.String)},
		},
	})
	t.module = graphql.NewObject(graphql.ObjectConfig{
		Name: "Module",
		Fields: graphql.Fields{
			"title":              &graphql.Field{Type: nonNull(graphql.String)},
			"description":        &graphql.Field{Type: nonNull(graphql.String)},
			"content":            &graphql.Field{Type: graphql.String},
			"key_points":         &graphql.Field{Type: graphql.NewList(nonNull(graphql.String))},
			"estimated_duration": &graphql.Field{Type: graphql.String},
		},
	})
	t.plan = graphql.NewObject(graphql.ObjectConfig{
		Name: "Syllabus",
		Fields: graphql.Fields{
			"topic":               &graphql.Field{Type: nonNull(graphql.String)},
			"overview":            &graphql.Field{Type: nonNull(graphql.String)},
			"modules":             &graphql.Field{Type: listOf(t.module)},
			"total_duration":      &graphql.Field{Type: nonNull(graphql.String)},
			"learning_objectives": &graphql.Field{Type: listOf(graphql.String)},
		},
	})
	t.course = graphql.NewObject(graphql.ObjectConfig{
		Name: "EducateResponse",
		Fields: graphql.Fields{
			"topic":         &graphql.Field{Type: nonNull(graphql.String)},
			"syllabus":      &graphql.Field{Type: nonNull(t.plan)},
			"modules":       &graphql.Field{Type: listOf(t.module)},
			"quiz":          &graphql.Field{Type: nonNull(t.quiz)},
			"pdf_url":       &graphql.Field{Type: graphql.String},
			"provider_used": &graphql.Field{Type: nonNull(graphql.String)},
			"generated_at":  &graphql.Field{Type: nonNull(graphql.DateTime)},
			"include_pdf":   &graphql.Field{Type: nonNull(graphql.Boolean)},
		},
	})

	t.summarizeResult = t.union("SummarizeResult", t.summarize)
	t.explainResult = t.union("ExplainResult", t.explain)
	t.quizResult = t.union("QuizResult", t.quiz)
	t.educateResult = t.union("EducateResult", t.course)

	t.summarizeInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SummarizeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"text":       &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"api_key":    &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"max_length": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: domain.DefaultSummaryLength},
		},
	})
	t.explainInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ExplainInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"concept": &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"api_key": &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"level":   &graphql.InputObjectFieldConfig{Type: t.level},
		},
	})
	t.quizInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "QuizInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"topic":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"text":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"api_key":       &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"num_questions": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: domain.DefaultQuestionCount},
			"difficulty":    &graphql.InputObjectFieldConfig{Type: t.difficulty},
		},
	})
	t.educateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EducateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"topic":         &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"api_key":       &graphql.InputObjectFieldConfig{Type: nonNull(graphql.String)},
			"modules_count": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: domain.DefaultModulesCount},
			"include_pdf":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: false},
		},
	})

	return t
}

// union pairs a success type with Error. Resolvers return either a *payloadError
// or the success value.
func (t *types) union(name string, ok *graphql.Object) *graphql.Union {
	return graphql.NewUnion(graphql.UnionConfig{
		Name:  name,
		Types: []*graphql.Object{ok, t.errorObj},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			if _, isErr := p.Value.(*payloadError); isErr {
				return t.errorObj
			}
			return ok
		},
	})
}
