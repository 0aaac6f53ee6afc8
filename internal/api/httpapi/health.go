package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/youspace/youspace/internal/api/respond"
	"github.com/youspace/youspace/internal/store"
)

// HealthHandler reports liveness plus store connectivity. When a cached
// status func is bound the endpoint reads it without touching the
// store; otherwise each request pings the store directly.
type HealthHandler struct {
	store  store.Store
	cached func() bool
}

func NewHealthHandler(s store.Store, cached func() bool) *HealthHandler {
	return &HealthHandler{store: s, cached: cached}
}

// CheckHealth GET /api/health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	if !h.healthy(r.Context()) {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.WriteJSON(w, code, map[string]string{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) healthy(ctx context.Context) bool {
	if h.cached != nil {
		return h.cached()
	}
	if pinger, ok := h.store.(store.HealthPinger); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return pinger.HealthPing(pingCtx) == nil
	}
	return true
}
