package nav

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

// Handler serves the panel registry.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"panels": Panels()})
}
