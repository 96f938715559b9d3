package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/models"
)

// PresentationHandler serves read-only inspection of the active presentation
// alongside the MCP tool surface.
type PresentationHandler struct {
	deck *deck.Service
}

func NewPresentationHandler(d *deck.Service) *PresentationHandler {
	return &PresentationHandler{deck: d}
}

// Info handles GET /presentation
func (h *PresentationHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.deck.Info()
	if err != nil {
		writeDeckError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, info)
}

// Slides handles GET /presentation/slides
func (h *PresentationHandler) Slides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.deck.Slides()
	if err != nil {
		writeDeckError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, slides)
}

// SlideShapes handles GET /presentation/slides/{slide_index}/shapes
func (h *PresentationHandler) SlideShapes(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "slide_index"))
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "slide_index must be an integer")
		return
	}
	shapes, err := h.deck.SlideShapes(index)
	if err != nil {
		writeDeckError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, shapes)
}

// SlideText handles GET /presentation/slides/{slide_index}/text
func (h *PresentationHandler) SlideText(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "slide_index"))
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "slide_index must be an integer")
		return
	}
	text, err := h.deck.SlideText(index)
	if err != nil {
		writeDeckError(w, err)
		return
	}
	models.WriteJSON(w, http.StatusOK, text)
}

func writeDeckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deck.ErrNoActivePresentation):
		models.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, deck.ErrSlideOutOfRange), errors.Is(err, deck.ErrShapeOutOfRange):
		models.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		models.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
