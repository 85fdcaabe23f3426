package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "X-Forwarded-User from oauth2-proxy",
			headers: map[string]string{"X-Forwarded-User": "alice"},
			want:    "alice",
		},
		{
			name:    "X-Forwarded-Email fallback",
			headers: map[string]string{"X-Forwarded-Email": "alice@example.com"},
			want:    "alice@example.com",
		},
		{
			name: "X-Forwarded-User takes priority",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			want: "alice",
		},
		{
			name:    "unattributed request",
			headers: map[string]string{},
			want:    "anonymous",
		},
		{
			name:    "unrecognized headers are ignored",
			headers: map[string]string{"X-Remote-User": "system:serviceaccount:ns:sa"},
			want:    "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.want, extractAuthor(c))
		})
	}
}
