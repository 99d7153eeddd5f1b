package handlers

import (
	"net/http"
	"strings"

	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type AboutHandler struct {
	aboutService *service.AboutService
	forms        *FormDecoder
	logger       logging.Logger
}

func NewAboutHandler(aboutService *service.AboutService, forms *FormDecoder, logger logging.Logger) *AboutHandler {
	return &AboutHandler{aboutService: aboutService, forms: forms, logger: logger}
}

// aboutInput reads skills as a comma-separated list.
func aboutInput(body *RequestBody) service.AboutInput {
	input := service.AboutInput{
		Bio:   body.Field("bio"),
		Image: body.File("image"),
	}
	if raw := body.Field("skills"); raw != nil {
		skills := strings.Split(*raw, ",")
		input.Skills = &skills
	}
	return input
}

func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutService.Get(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, about)
}

func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := h.forms.Decode(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	about, err := h.aboutService.Update(r.Context(), aboutInput(body))
	if err != nil {
		body.Discard()
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, about)
}
