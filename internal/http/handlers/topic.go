package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/http/response"
	"github.com/yungbote/edubot-backend/internal/platform/apierr"
	"github.com/yungbote/edubot-backend/internal/services"
)

type TopicHandler struct {
	content services.ContentService
}

func NewTopicHandler(content services.ContentService) *TopicHandler {
	return &TopicHandler{content: content}
}

// GET /api/v1/topics
func (h *TopicHandler) List(c *gin.Context) {
	out, err := h.content.ListTopics(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/v1/topics/:id
func (h *TopicHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	rec, err := h.content.GetTopic(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	if rec == nil {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, fmt.Errorf("topic %q not found", id))
		return
	}
	response.RespondOK(c, rec)
}
