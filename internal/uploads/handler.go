package uploads

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/pkg/response"
	"github.com/eventra/backend/pkg/storage"
)

// Handler handles image uploads to S3. Each upload stands alone: a failed
// image returns its own error and the client retries just that file, event
// submission is never coupled to it.
type Handler struct {
	s3     *storage.S3
	logger *zap.Logger
}

// NewHandler creates an uploads handler.
func NewHandler(s3 *storage.S3, logger *zap.Logger) *Handler {
	return &Handler{s3: s3, logger: logger}
}

// UploadImage handles POST /upload/image (multipart field "image").
func (h *Handler) UploadImage(c *gin.Context) {
	if h.s3 == nil {
		response.Internal(c, "image storage is not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if file.Size > storage.MaxImageSize {
		response.BadRequest(c, "image exceeds the 5MB size limit")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !storage.ValidateImageType(contentType, file.Filename) {
		response.BadRequest(c, "unsupported image type")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Internal(c, "failed to read image")
		return
	}
	defer src.Close()

	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), file.Filename)
	key := storage.ImageKey(userID.String(), filename)
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(file.Filename)
	}

	url, err := h.s3.Upload(c.Request.Context(), h.s3.ImagesBucket(), key, contentType, src, file.Size)
	if err != nil {
		h.logger.Error("image upload failed", zap.String("key", key), zap.Error(err))
		response.Internal(c, "failed to upload image")
		return
	}

	response.OK(c, gin.H{"url": url})
}
