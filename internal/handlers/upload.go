package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/charmworks-backend/internal/services"
)

// UploadHandler stores catalog imagery (product photos, template previews,
// news covers) in the bucket and returns the key plus public URL.
type UploadHandler struct {
	bucketService services.BucketService
}

func NewUploadHandler(bucketService services.BucketService) *UploadHandler {
	return &UploadHandler{bucketService: bucketService}
}

var allowedUploadKinds = map[string]bool{
	"product":   true,
	"template":  true,
	"accessory": true,
	"news":      true,
}

func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.PostForm("kind")
	if !allowedUploadKinds[kind] {
		RespondError(c, http.StatusBadRequest, "INVALID_KIND", fmt.Errorf("unknown upload kind"))
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("file required"))
		return
	}
	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".svg":
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", fmt.Errorf("unsupported file type %s", ext))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("unreadable file"))
		return
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", kind, uuid.New().String(), ext)
	if err := h.bucketService.UploadFile(c.Request.Context(), key, file); err != nil {
		RespondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", err)
		return
	}
	RespondOK(c, gin.H{
		"key": key,
		"url": h.bucketService.GetPublicURL(key),
	})
}
