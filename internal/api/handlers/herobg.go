package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type HeroBgHandler struct {
	heroBgService   *service.HeroBgService
	rotationService *service.RotationService
	forms           *FormDecoder
	logger          logging.Logger
}

func NewHeroBgHandler(heroBgService *service.HeroBgService, rotationService *service.RotationService, forms *FormDecoder, logger logging.Logger) *HeroBgHandler {
	return &HeroBgHandler{
		heroBgService:   heroBgService,
		rotationService: rotationService,
		forms:           forms,
		logger:          logger,
	}
}

func heroBgInput(body *RequestBody) (service.HeroBgInput, error) {
	active, err := body.Bool("active")
	if err != nil {
		return service.HeroBgInput{}, err
	}
	return service.HeroBgInput{
		Label:  body.Field("label"),
		Active: active,
		Image:  body.File("image"),
	}, nil
}

// List returns the active rotation pool.
func (h *HeroBgHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.heroBgService.ListActive(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *HeroBgHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	images, err := h.heroBgService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *HeroBgHandler) Current(w http.ResponseWriter, r *http.Request) {
	image, err := h.rotationService.CurrentHero(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *HeroBgHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	input, err := heroBgInput(body)
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}

	image, err := h.heroBgService.Create(r.Context(), input)
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *HeroBgHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	input, err := heroBgInput(body)
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}

	image, err := h.heroBgService.Update(r.Context(), id, input)
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *HeroBgHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.heroBgService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: id.String(), Message: "Hero background deleted"})
}
