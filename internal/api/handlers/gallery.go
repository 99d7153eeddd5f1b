package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	forms          *FormDecoder
	logger         logging.Logger
}

func NewGalleryHandler(galleryService *service.GalleryService, forms *FormDecoder, logger logging.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		forms:          forms,
		logger:         logger,
	}
}

func galleryInput(body *RequestBody) service.GalleryInput {
	return service.GalleryInput{
		Title:    body.Field("title"),
		Category: body.Field("category"),
		ISO:      body.Field("iso"),
		Shutter:  body.Field("shutter"),
		Aperture: body.Field("aperture"),
		Image:    body.File("image"),
	}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	image, err := h.galleryService.Create(r.Context(), galleryInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	image, err := h.galleryService.Update(r.Context(), id, galleryInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.galleryService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: id.String(), Message: "Gallery image deleted"})
}
