package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dheerajjx/portfolio/internal/api/middleware"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      logging.Logger
}

func NewAuthHandler(authService *service.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type VerifyOTPResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.authService.RequestCode(r.Context(), req.Email); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "OTP sent to email"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.authService.VerifyCode(r.Context(), req.Email, req.OTP)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, VerifyOTPResponse{
		ID:    result.Account.ID.String(),
		Email: result.Account.Email,
		Token: result.Token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	account, err := h.authService.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountResponse{
		ID:    account.ID.String(),
		Email: account.Email,
	})
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return domain.Invalid("invalid request body")
	}
	return nil
}
