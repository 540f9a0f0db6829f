package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/domain"
	"github.com/yungbote/edubot-backend/internal/http/response"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/services"
)

type ContentHandlerDeps struct {
	Log     *logger.Logger
	Content services.ContentService
}

type ContentHandler struct {
	log     *logger.Logger
	content services.ContentService
}

func NewContentHandlerWithDeps(deps ContentHandlerDeps) *ContentHandler {
	return &ContentHandler{
		log:     deps.Log.With("handler", "ContentHandler"),
		content: deps.Content,
	}
}

// POST /api/v1/summarize
func (h *ContentHandler) Summarize(c *gin.Context) {
	var req domain.SummarizeRequest
	if !bindRequest(c, &req) {
		return
	}
	out, err := h.content.Summarize(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("summarize failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/v1/explain
func (h *ContentHandler) Explain(c *gin.Context) {
	var req domain.ExplainRequest
	if !bindRequest(c, &req) {
		return
	}
	out, err := h.content.Explain(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("explain failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/v1/quiz
// body: { "topic" | "text", "api_key", "num_questions", "difficulty" }
func (h *ContentHandler) Quiz(c *gin.Context) {
	var req domain.QuizRequest
	if !bindRequest(c, &req) {
		return
	}
	out, err := h.content.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("quiz failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// POST /api/v1/educate
// Progress for the same topic streams on GET /api/v1/educate/progress?topic=.
func (h *ContentHandler) Educate(c *gin.Context) {
	var req domain.CourseRequest
	if !bindRequest(c, &req) {
		return
	}
	out, err := h.content.GenerateCourse(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("educate failed", "topic", req.Topic, "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}
