package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"

	"autorental-backend/internal/logger"
	"autorental-backend/internal/storage"

	"github.com/gorilla/mux"
)

// ImageHandler streams stored car images when no CDN serves them.
type ImageHandler struct {
	blobs storage.BlobReader
}

func NewImageHandler(blobs storage.BlobReader) *ImageHandler {
	return &ImageHandler{blobs: blobs}
}

func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	file, err := h.blobs.Open(r.Context(), name)
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		writeMessage(w, http.StatusBadRequest, "invalid image name")
		return
	case errors.Is(err, fs.ErrNotExist):
		writeMessage(w, http.StatusNotFound, "image not found")
		return
	case err != nil:
		logger.Error("Failed to open image", "name", name, "error", err)
		writeMessage(w, http.StatusNotFound, "image not found")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", storage.ContentType(name))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("Image stream interrupted", "name", name, "error", err)
	}
}
