package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"ok", http.StatusOK, "{}", nil, ""},
		{"no content", http.StatusNoContent, "", nil, ""},
		{"bad request", http.StatusBadRequest, "bad", ErrBadRequest, "bad"},
		{"unauthorized", http.StatusUnauthorized, "", ErrUnauthorized, ""},
		{"forbidden", http.StatusForbidden, "", ErrForbidden, ""},
		{"not found", http.StatusNotFound, " missing \n", ErrNotFound, "missing"},
		{"rate limited", http.StatusTooManyRequests, "", ErrTooManyRequests, ""},
		{"internal", http.StatusInternalServerError, "", ErrInternalServerError, ""},
		{"bad gateway", http.StatusBadGateway, "", ErrBadGateway, ""},
		{"unavailable", http.StatusServiceUnavailable, "", ErrServiceUnavailable, ""},
		{"teapot", http.StatusTeapot, "", nil, "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWithStatus(t, tt.status, tt.body))

			if tt.status < http.StatusMultipleChoices {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	assert.True(t, isRetryableStatus(http.StatusTooManyRequests))
	assert.True(t, isRetryableStatus(http.StatusInternalServerError))
	assert.True(t, isRetryableStatus(http.StatusGatewayTimeout))
	assert.False(t, isRetryableStatus(http.StatusNotFound))
	assert.False(t, isRetryableStatus(http.StatusBadRequest))
}
