package handlers

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type StoryHandler struct {
	storyService *service.StoryService
	logger       logging.Logger
}

func NewStoryHandler(storyService *service.StoryService, logger logging.Logger) *StoryHandler {
	return &StoryHandler{storyService: storyService, logger: logger}
}

func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	story, err := h.storyService.Get(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}

// Replace accepts any subset of highlights, chapters, signatureQuote and
// signatureTags.
func (h *StoryHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var input service.StoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	story, err := h.storyService.Replace(r.Context(), input)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, story)
}
