// Package httpapi exposes the REST surface over SpaceService.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/youspace/youspace/internal/api/respond"
	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/services"
)

type SpaceHandler struct {
	svc *services.SpaceService
}

func NewSpaceHandler(svc *services.SpaceService) *SpaceHandler {
	return &SpaceHandler{svc: svc}
}

// CreateMemory POST /api/memories
func (h *SpaceHandler) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SpaceID     string `json:"spaceId"`
		DisplayName string `json:"displayName"`
		Note        string `json:"note"`
		PhotoURL    string `json:"photoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.AddMemory(r.Context(), services.AddMemoryRequest{
		SpaceID:     req.SpaceID,
		DisplayName: req.DisplayName,
		Note:        req.Note,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListMemories GET /api/memories/{spaceId}
func (h *SpaceHandler) ListMemories(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListMemories(r.Context(), mux.Vars(r)["spaceId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if out == nil {
		out = []*model.Memory{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"memories": out, "count": len(out)})
}

// GenerateStory POST /api/generate-story
func (h *SpaceHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SpaceID string `json:"spaceId"`
		Mode    string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.GenerateStory(r.Context(), req.SpaceID, model.StoryMode(req.Mode))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetStory GET /api/generated-story/{spaceId}
// A space without a story responds 200 null: "not yet generated" is a
// valid outcome, not an error.
func (h *SpaceHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetStory(r.Context(), mux.Vars(r)["spaceId"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteJSON(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// writeServiceError maps service errors onto the HTTP taxonomy:
// validation failures are 4xx with a field-level message, storage
// failures are 5xx.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
