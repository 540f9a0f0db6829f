package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/domain"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler { return &HealthHandler{now: time.Now} }

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	info := domain.Info()
	c.JSON(http.StatusOK, gin.H{
		"message":          "Welcome to " + info.Name,
		"version":          info.Version,
		"graphql_endpoint": "/graphql",
		"endpoints":        info.Endpoints,
		"features":         info.Features,
	})
}

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   domain.HealthMessage,
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"version":   domain.APIVersion,
	})
}

// GET /docs-info
func (h *HealthHandler) DocsInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":          "REST endpoints live under /api/v1. The same operations are available over GraphQL at /graphql.",
		"graphql_endpoint": "/graphql",
		"available_operations": gin.H{
			"queries": []string{
				"health - API health check",
				"topics - Get all saved topics",
				"topic(id) - Get specific topic",
				"apiInfo - Get API information",
			},
			"mutations": []string{
				"summarize - Summarize text content",
				"explain - Explain concepts",
				"generateQuiz - Create MCQ quizzes",
				"educate - Generate complete educational content",
			},
			"streams": []string{
				"GET /api/v1/educate/progress?topic= - Course generation progress (SSE)",
			},
		},
		"example_queries": gin.H{
			"health_check": "query { health { status message version timestamp } }",
			"summarize": `mutation {
  summarize(input: { text: "Your text here...", api_key: "your-gemini-api-key", max_length: 100 }) {
    ... on SummarizeResponse { summary original_length summary_length }
    ... on Error { code message }
  }
}`,
		},
	})
}
