package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "coffee-shop-server", false)

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "coffee-shop-server", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_LevelByDeploymentMode(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name        string
		production  bool
		level       zerolog.Level
		debugHidden bool
	}{
		{"development", false, zerolog.DebugLevel, false},
		{"production", true, zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, "coffee-shop-server", tt.production)

			assert.Equal(t, tt.level, zerolog.GlobalLevel())

			l.Debug().Msg("key set cached")
			assert.Equal(t, tt.debugHidden, buf.Len() == 0)
		})
	}
}

func TestConstructors_NotNil(t *testing.T) {
	require.NotNil(t, NewLogger("coffee-shop-server", false))
	require.NotNil(t, NewClientLogger("coffee-shop-client", false))
	require.NotNil(t, Nop())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "coffee-shop-server", false)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "coffee-shop-server", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()), "a bare context still yields a logger")

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger().WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger().WithContext(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/drinks", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-trace", decodeEntry(t, &buf)["trace_id"])
}
