package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type MemoryHandler struct {
	memoryService *service.MemoryService
	forms         *FormDecoder
	logger        logging.Logger
}

func NewMemoryHandler(memoryService *service.MemoryService, forms *FormDecoder, logger logging.Logger) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
		forms:         forms,
		logger:        logger,
	}
}

func memoryInput(body *RequestBody) service.MemoryInput {
	return service.MemoryInput{
		Title:    body.Field("title"),
		Location: body.Field("location"),
		Date:     body.Field("date"),
		Category: body.Field("category"),
		Quote:    body.Field("quote"),
		Image:    body.File("image"),
		Gallery:  body.FileList("gallery"),
	}
}

func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, memories)
}

func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	memory, err := h.memoryService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, memory)
}

func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	memory, err := h.memoryService.Create(r.Context(), memoryInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, memory)
}

func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	memory, err := h.memoryService.Update(r.Context(), id, memoryInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, memory)
}

func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.memoryService.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{ID: id.String(), Message: "Memory deleted"})
}
