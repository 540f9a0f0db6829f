package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/http/response"
	"github.com/yungbote/edubot-backend/internal/platform/apierr"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.SSEHub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub) *RealtimeHandler {
	return &RealtimeHandler{
		log: log.With("handler", "RealtimeHandler"),
		hub: hub,
	}
}

// GET /api/v1/educate/progress?topic=
// Streams progress for every course generation running for topic, on any instance
// sharing the bus. The stream ends after a completed or failed event.
func (h *RealtimeHandler) CourseProgress(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	if topic == "" {
		response.RespondError(c, http.StatusUnprocessableEntity, apierr.CodeValidationError, fmt.Errorf("topic query parameter is required"))
		return
	}
	client := h.hub.NewSSEClient()
	defer h.hub.CloseClient(client)

	channel := realtime.ChannelForTopic(topic)
	h.hub.AddChannel(client, channel)
	h.log.Debug("progress stream open", "channel", channel, "client_id", client.ID.String())

	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
