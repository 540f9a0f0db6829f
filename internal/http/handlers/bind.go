package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/http/response"
	"github.com/yungbote/edubot-backend/internal/platform/apierr"
	"github.com/yungbote/edubot-backend/internal/validation"
)

// bindRequest decodes the JSON body into req, applies defaults and validates.
// It writes the error response itself and reports whether the handler may go on.
func bindRequest(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, apierr.CodeValidationError, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	if err := validation.Request(req); err != nil {
		response.RespondAPIError(c, err)
		return false
	}
	return true
}
