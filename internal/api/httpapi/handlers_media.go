package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/youspace/youspace/internal/api/respond"
	"github.com/youspace/youspace/internal/objectstore"
)

// Captioner is the single-photo captioning capability.
type Captioner interface {
	CaptionPhoto(ctx context.Context, image, note string) string
}

// MediaHandler serves upload-target issuing and single-photo captions.
type MediaHandler struct {
	uploader  objectstore.SignedUploader
	captioner Captioner
}

func NewMediaHandler(uploader objectstore.SignedUploader, captioner Captioner) *MediaHandler {
	return &MediaHandler{uploader: uploader, captioner: captioner}
}

// CreateUploadTarget POST /api/objects/upload
func (h *MediaHandler) CreateUploadTarget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.FileName == "" {
		respond.WriteBadRequest(w, "fileName is required")
		return
	}
	if h.uploader == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	target, err := h.uploader.CreateUploadTarget(r.Context(), req.FileName, req.FileType)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, target)
}

// CreateCaption POST /api/caption
// Accepts a base64 payload or an http(s) URL. Caption generation never
// fails user-visibly: the captioner degrades to a fixed caption.
func (h *MediaHandler) CreateCaption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image string `json:"image"`
		Note  string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Image == "" {
		respond.WriteBadRequest(w, "image is required (base64 string or URL)")
		return
	}
	caption := h.captioner.CaptionPhoto(r.Context(), req.Image, req.Note)
	respond.WriteJSON(w, http.StatusOK, map[string]string{"caption": caption})
}
