package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loomhq/loom/pkg/orchestrator"
	"github.com/loomhq/loom/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", services.NewValidationError("session_id", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"branch conflict", services.ErrBranchConflict, http.StatusConflict},
		{"wrapped not found", errors.Join(errors.New("outer"), services.ErrNotFound), http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func TestMapExecutorError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"turn active", orchestrator.ErrTurnActive, http.StatusConflict},
		{"at capacity", orchestrator.ErrAtCapacity, http.StatusTooManyRequests},
		{"shutting down", orchestrator.ErrShuttingDown, http.StatusServiceUnavailable},
		{"validation", services.NewValidationError("message", "required"), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapExecutorError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
