package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type ThoughtHandler struct {
	thoughtService *service.ThoughtService
	forms          *FormDecoder
	logger         logging.Logger
}

func NewThoughtHandler(thoughtService *service.ThoughtService, forms *FormDecoder, logger logging.Logger) *ThoughtHandler {
	return &ThoughtHandler{
		thoughtService: thoughtService,
		forms:          forms,
		logger:         logger,
	}
}

func thoughtInput(body *RequestBody) service.ThoughtInput {
	return service.ThoughtInput{
		Title:    body.Field("title"),
		Excerpt:  body.Field("excerpt"),
		Content:  body.Field("content"),
		Category: body.Field("category"),
		ReadTime: body.Field("readTime"),
		Gradient: body.Field("gradient"),
	}
}

func (h *ThoughtHandler) List(w http.ResponseWriter, r *http.Request) {
	thoughts, err := h.thoughtService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, thoughts)
}

func (h *ThoughtHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	thought, err := h.thoughtService.Create(r.Context(), thoughtInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, thought)
}

func (h *ThoughtHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	thought, err := h.thoughtService.Update(r.Context(), id, thoughtInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, thought)
}

func (h *ThoughtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.thoughtService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: id.String(), Message: "Thought deleted"})
}
