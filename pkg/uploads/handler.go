package uploads

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"incuhub/pkg/response"
)

// AdminFileHandler lets reviewers download submitted documents by storage
// key. It streams from the private store; no filesystem path ever appears in
// a URL.
type AdminFileHandler struct {
	store Store
}

func NewAdminFileHandler(store Store) *AdminFileHandler {
	return &AdminFileHandler{store: store}
}

func (h *AdminFileHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/files/:key", h.downloadFile)
}

// @Summary      Download a submitted document
// @Description  Streams a stored document (pitch deck, business plan or CV) by its storage key
// @Tags         admin
// @Produce      application/octet-stream
// @Param        key  path  string  true  "Storage key"
// @Success      200  {file}  file  "Document content"
// @Failure      404  {object}  response.APIResponse "Document not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /admin/files/{key} [get]
func (h *AdminFileHandler) downloadFile(c *gin.Context) {
	key := c.Param("key")

	rc, meta, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "document not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, "failed to open document", nil)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", meta.Name),
	}
	c.DataFromReader(http.StatusOK, meta.Size, meta.ContentType, rc, extraHeaders)
}
