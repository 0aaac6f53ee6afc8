package httpapi

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/api/recovery"
	"github.com/youspace/youspace/internal/objectstore"
	"github.com/youspace/youspace/internal/services"
	"github.com/youspace/youspace/internal/store"
)

// NewRouter wires all HTTP routes. uploader and captioner may be nil
// when the corresponding external service is not configured; the
// affected endpoints then degrade (503 upload, fallback caption).
// healthy is the bound background health flag; nil means the health
// endpoint pings the store per request.
func NewRouter(svc *services.SpaceService, st store.Store, uploader objectstore.SignedUploader, captioner Captioner, healthy func() bool, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(RequestLogger(log))

	space := NewSpaceHandler(svc)
	root.HandleFunc("/api/memories", space.CreateMemory).Methods("POST")
	root.HandleFunc("/api/memories/{spaceId}", space.ListMemories).Methods("GET")
	root.HandleFunc("/api/generate-story", space.GenerateStory).Methods("POST")
	root.HandleFunc("/api/generated-story/{spaceId}", space.GetStory).Methods("GET")
	root.HandleFunc("/api/poster/{spaceId}", space.GetPoster).Methods("GET")

	media := NewMediaHandler(uploader, captioner)
	root.HandleFunc("/api/objects/upload", media.CreateUploadTarget).Methods("POST")
	root.HandleFunc("/api/caption", media.CreateCaption).Methods("POST")

	health := NewHealthHandler(st, healthy)
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return root
}
