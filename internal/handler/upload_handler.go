package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"cottage-store/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxUploadBytes bounds one uploaded image.
const maxUploadBytes = 10 << 20

// UploadHandler accepts image uploads and hands back their public URLs.
type UploadHandler struct {
	store  storage.BlobStore
	logger zerolog.Logger
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.BlobStore, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger.With().Str("handler", "upload").Logger(),
	}
}

// Upload handles POST /api/admin/uploads?bucket=product|category. The file
// arrives as multipart field "file"; the stored name is a fresh id plus the
// original extension, so repeated uploads never collide.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "image storage is not configured", h.logger)
		return
	}

	var bucket string
	switch r.URL.Query().Get("bucket") {
	case "product":
		bucket = storage.BucketProductImages
	case "category":
		bucket = storage.BucketCategoryImages
	default:
		writeError(w, http.StatusBadRequest, "bucket must be product or category", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required", h.logger)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file", h.logger)
		return
	}

	filename := uuid.NewString() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.store.Upload(r.Context(), bucket, filename, data, contentType); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store file", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url": h.store.PublicURL(bucket, filename),
	})
}
