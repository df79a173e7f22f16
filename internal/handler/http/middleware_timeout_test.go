package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerCounter counts WriteHeader calls that reach the connection.
type headerCounter struct {
	*httptest.ResponseRecorder
	calls int
}

func (c *headerCounter) WriteHeader(code int) {
	c.calls++
	c.ResponseRecorder.WriteHeader(code)
}

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantError  bool
	}{
		{
			name: "fast handler",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "slow handler that still answers",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "handler that reports the deadline itself",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				writeError(w, r, r.Context().Err())
			},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  true,
		},
		{
			name: "handler that gives up silently",
			handler: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &headerCounter{ResponseRecorder: httptest.NewRecorder()}

			withTimeout(10*time.Millisecond)(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drinks", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 1, rec.calls, "status must be written exactly once")

			if tt.wantError {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, http.StatusGatewayTimeout, resp.Error)
			}
		})
	}
}

func TestWithTimeout_SetsDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool

	h := withTimeout(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/drinks", nil).WithContext(context.Background()))

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
