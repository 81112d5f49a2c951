package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/response"
)

// maxUploadSize caps profile and project asset uploads at 10 MiB.
const maxUploadSize = 10 << 20

// AssetUploader stores an uploaded file and returns its public URL
type AssetUploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// UploadHandler handles asset upload endpoints
type UploadHandler struct {
	uploader AssetUploader
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploader AssetUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload stores a multipart file and returns its URL
// POST /api/v1/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		response.Error(c, domainerrors.NewAppError(http.StatusServiceUnavailable, domainerrors.CodeInternalError, "Uploads are not configured", nil))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("A file field is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.Error(c, domainerrors.BadRequest("File exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}
