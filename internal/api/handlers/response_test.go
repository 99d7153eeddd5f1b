package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dheerajjx/portfolio/internal/api/middleware"
	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.MissingFields("title"), http.StatusBadRequest},
		{fmt.Errorf("memory x: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrInvalidOTP, http.StatusUnauthorized},
		{domain.ErrOTPExpired, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("%w: dial", domain.ErrEmailDelivery), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, _ := errorStatus(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestWriteError_LogsSignedInAdmin(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/memories", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.EmailKey, "admin@example.com"))
	rec := httptest.NewRecorder()

	writeError(rec, req, logger, errors.New("disk full"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "admin@example.com", entry["admin"])
	assert.Equal(t, "/api/memories", entry["path"])
}

func TestWriteError_ClientErrorsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/memories/x", nil)
	rec := httptest.NewRecorder()

	writeError(rec, req, logger, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, buf.String())
}
