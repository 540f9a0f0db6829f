package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/edubot-backend/internal/docgen"
	"github.com/yungbote/edubot-backend/internal/http/response"
	"github.com/yungbote/edubot-backend/internal/platform/apierr"
)

type DocumentHandler struct {
	dir string
}

func NewDocumentHandler(dir string) *DocumentHandler {
	return &DocumentHandler{dir: dir}
}

var errPDFNotFound = errors.New("PDF file not found")

// GET /api/v1/download/pdf/:filename
func (h *DocumentHandler) DownloadPDF(c *gin.Context) {
	name := c.Param("filename")
	path, ok := docgen.ResolveDownload(h.dir, name)
	if !ok {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, errPDFNotFound)
		return
	}
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		response.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, errPDFNotFound)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, name)
}
