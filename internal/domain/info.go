package domain

const (
	APITitle       = "EduBot API"
	APIVersion     = "1.0.0"
	APIDescription = "Educational content generation using Google Gemini AI"
	HealthMessage  = "EduBot API is running"
)

// APIFeatures is advertised by the info endpoints of both transports.
var APIFeatures = []string{
	"Text summarization using Gemini AI",
	"Concept explanation at different levels",
	"Quiz generation with multiple choice questions",
	"Complete educational content generation",
	"PDF export capability",
	"Topic history tracking",
	"Course generation progress stream",
}

var APIEndpoints = []string{
	"POST /api/v1/summarize - Summarize text",
	"POST /api/v1/explain - Explain concept",
	"POST /api/v1/quiz - Generate quiz",
	"POST /api/v1/educate - Generate complete educational content",
	"GET /api/v1/educate/progress?topic= - Course generation progress (SSE)",
	"GET /api/v1/topics - Get saved topics",
	"GET /api/v1/topics/:id - Get specific topic",
	"GET /api/v1/download/pdf/:filename - Download a generated PDF",
	"POST /graphql - GraphQL endpoint",
}

type APIInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
	Features    []string `json:"features"`
}

func Info() APIInfo {
	return APIInfo{
		Name:        APITitle,
		Version:     APIVersion,
		Description: APIDescription,
		Endpoints:   append([]string(nil), APIEndpoints...),
		Features:    append([]string(nil), APIFeatures...),
	}
}
