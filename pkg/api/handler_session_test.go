package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSessionsHandler_Validation(t *testing.T) {
	// Only parameter validation is covered here (it returns 400 before the
	// service is touched). Happy paths run against a real database in the
	// service tests.
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?search=ab", nil)
	rec := serveRoutes(t, s, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "search query must be at least 3 characters")
}
