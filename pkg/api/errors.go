package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/loomhq/loom/pkg/orchestrator"
	"github.com/loomhq/loom/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrBranchConflict) {
		return echo.NewHTTPError(http.StatusConflict, "branch is being written by another turn")
	}

	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapExecutorError maps turn-registration errors to HTTP error responses.
// These only fire before the stream opens; once streaming starts, failures
// travel as error events on the stream itself.
func mapExecutorError(err error) *echo.HTTPError {
	if errors.Is(err, orchestrator.ErrTurnActive) {
		return echo.NewHTTPError(http.StatusConflict, "a turn is already running for this session")
	}
	if errors.Is(err, orchestrator.ErrAtCapacity) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many turns in flight, retry shortly")
	}
	if errors.Is(err, orchestrator.ErrShuttingDown) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service is shutting down")
	}

	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}

	slog.Error("Turn registration failed", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to start turn")
}
