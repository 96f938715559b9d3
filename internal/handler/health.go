package handler

import (
	"errors"
	"net/http"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

const version = "1.1.0"

// HealthHandler handles GET /health
type HealthHandler struct {
	deck *deck.Service
}

func NewHealthHandler(d *deck.Service) *HealthHandler {
	return &HealthHandler{deck: d}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}

	if _, err := h.deck.Info(); err != nil {
		if errors.Is(err, deck.ErrNoActivePresentation) {
			checks["presentation"] = "none open"
		} else {
			checks["presentation"] = "error: " + err.Error()
		}
	} else {
		checks["presentation"] = "ok"
	}

	models.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: version,
		Checks:  checks,
	})
}
