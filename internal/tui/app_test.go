package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnvironment(t *testing.T) config.Environment {
	t.Helper()

	env, err := config.NewEnvironment(
		false,
		"http://127.0.0.1:5000",
		config.NewAuth0("dev-t-4sg5-6.eu", "drinks", "f4abwQOHufPxU63932dw2cns9AEc3n7p", "http://localhost:8100"),
	)
	require.NoError(t, err)
	return env
}

type copyRecorder struct {
	copied []string
	err    error
}

func (c *copyRecorder) copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

func newTestModel(t *testing.T, rec *copyRecorder) RootModel {
	t.Helper()
	return NewRootModel(testEnvironment(t), models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), rec.copy)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRowsFor(t *testing.T) {
	rows := rowsFor(testEnvironment(t))

	require.Len(t, rows, 10)
	assert.Equal(t, "production", rows[0].key)
	assert.Equal(t, "false", rows[0].value)
	assert.False(t, rows[5].derived)

	derived := rows[6:]
	for _, row := range derived {
		assert.True(t, row.derived, row.key)
		assert.NotEmpty(t, row.value, row.key)
	}
	assert.Equal(t, "domain", derived[0].key)
	assert.Equal(t, "loginURL", derived[3].key)
	assert.Contains(t, derived[3].value, "client_id=f4abwQOHufPxU63932dw2cns9AEc3n7p")
}

func TestRootModel_Navigation(t *testing.T) {
	m := newTestModel(t, &copyRecorder{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx, "cursor must not move above the first row")

	m, _ = update(t, m, keyRunes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.list.idx)

	m, _ = update(t, m, keyRunes("k"))
	assert.Equal(t, 1, m.list.idx)

	for range 20 {
		m, _ = update(t, m, keyRunes("j"))
	}
	assert.Equal(t, len(m.list.rows)-1, m.list.idx, "cursor must stop at the last row")
}

func TestRootModel_CopySelectedValue(t *testing.T) {
	rec := &copyRecorder{}
	m := newTestModel(t, rec)

	m, _ = update(t, m, keyRunes("j"))
	m, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copiedMsg{key: "apiServerUrl"}, msg)
	assert.Equal(t, []string{"http://127.0.0.1:5000"}, rec.copied)

	m, cmd = update(t, m, msg)
	assert.Equal(t, "Copied apiServerUrl", m.status)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestRootModel_CopyWithEnter(t *testing.T) {
	rec := &copyRecorder{}
	m := newTestModel(t, rec)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, copiedMsg{key: "production"}, cmd())
	assert.Equal(t, []string{"false"}, rec.copied)
}

func TestRootModel_CopyFailureShowsOverlay(t *testing.T) {
	rec := &copyRecorder{err: errors.New("no clipboard")}
	m := newTestModel(t, rec)

	_, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	failed, ok := msg.(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorContains(t, failed.err, "no clipboard")

	m, _ = update(t, m, msg)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Error")

	m, _ = update(t, m, keyRunes("j"))
	assert.Equal(t, 0, m.list.idx, "keys other than close are ignored under the overlay")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestCmdCopyToClipboard_EmptyValue(t *testing.T) {
	rec := &copyRecorder{}

	msg := cmdCopyToClipboard(rec.copy, fieldRow{key: "empty", value: "  "})()

	failed, ok := msg.(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, ErrNothingToCopy)
	assert.Empty(t, rec.copied)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	m := newTestModel(t, &copyRecorder{})

	m, _ = update(t, m, keyRunes("v"))
	require.True(t, m.showBuildInfo)

	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "2026-10-01")
	assert.Contains(t, view, "abc123")

	m, _ = update(t, m, keyRunes("j"))
	assert.Equal(t, 0, m.list.idx)

	m, _ = update(t, m, keyRunes("v"))
	assert.False(t, m.showBuildInfo)
}

func TestRootModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyRunes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, &copyRecorder{})

			_, cmd := update(t, m, tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestRootModel_View(t *testing.T) {
	m := newTestModel(t, &copyRecorder{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()

	assert.Contains(t, view, "coffee-shop environment (development)")
	assert.Contains(t, view, "apiServerUrl")
	assert.Contains(t, view, "derived")
	assert.Contains(t, view, "keySetURL")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "hello", fitText("hello", 5))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "ко", fitText("кофе", 2))
}
