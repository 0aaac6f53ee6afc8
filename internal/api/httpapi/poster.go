package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/poster"
)

// GetPoster GET /api/poster/{spaceId}
// Server-rendered memory-book fragment. Deterministic per stored story:
// repeated renders (and downloads made from them) always match.
func (h *SpaceHandler) GetPoster(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetStory(r.Context(), mux.Vars(r)["spaceId"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			http.Error(w, "no memory book generated for this space yet", http.StatusNotFound)
			return
		}
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(poster.Render(st)))
}
