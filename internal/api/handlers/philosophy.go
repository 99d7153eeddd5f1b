package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/service"
)

type PhilosophyHandler struct {
	rotationService *service.RotationService
}

func NewPhilosophyHandler(rotationService *service.RotationService) *PhilosophyHandler {
	return &PhilosophyHandler{rotationService: rotationService}
}

func (h *PhilosophyHandler) Today(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rotationService.Today())
}
