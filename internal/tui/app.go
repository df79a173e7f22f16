package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

// RootModel is the environment inspector:
// 1) lists the configuration and its derived values
// 2) copies the selected value
// 3) toggles the build information window
// 4) shows clipboard failures in an overlay
type RootModel struct {
	title     string
	list      listModel
	buildInfo models.AppBuildInfo
	copy      CopyFunc
	help      help.Model

	width  int
	status string

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

// NewRootModel builds the inspector for env.
func NewRootModel(env config.Environment, buildInfo models.AppBuildInfo, copy CopyFunc) RootModel {
	mode := "development"
	if env.Production() {
		mode = "production"
	}

	return RootModel{
		title:     "coffee-shop environment (" + mode + ")",
		list:      newListModel(env),
		buildInfo: buildInfo,
		copy:      copy,
		help:      help.New(),
	}
}

func (r RootModel) Init() tea.Cmd {
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.help.Width = msg.Width
		return r, nil

	case copiedMsg:
		r.status = "Copied " + msg.key
		return r, cmdClearStatus()

	case copyFailedMsg:
		r.showError = true
		r.errorOverlay = errorOverlayModel{message: humanizeClipboardError(msg.err)}
		return r, nil

	case clearStatusMsg:
		r.status = ""
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return r, tea.Quit
	}

	if r.showError {
		if key.Matches(msg, keys.esc) || msg.String() == "enter" {
			r.showError = false
		}
		return r, nil
	}

	if r.showBuildInfo {
		switch {
		case key.Matches(msg, keys.buildInfo, keys.esc):
			r.showBuildInfo = false
		case key.Matches(msg, keys.quit):
			return r, tea.Quit
		}
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return r, tea.Quit
	case key.Matches(msg, keys.up):
		r.list.moveUp()
	case key.Matches(msg, keys.down):
		r.list.moveDown()
	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = true
	case key.Matches(msg, keys.copy):
		row, ok := r.list.current()
		if !ok {
			return r, nil
		}
		return r, cmdCopyToClipboard(r.copy, row)
	}

	return r, nil
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(r.list.View(r.width))

	if r.showError {
		b.WriteString("\n")
		b.WriteString(r.errorOverlay.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if r.status != "" {
		b.WriteString(statusStyle.Render(r.status))
	}
	b.WriteString("\n")
	b.WriteString(r.help.View(keys))

	return appStyle.Render(b.String())
}

func cmdCopyToClipboard(copy CopyFunc, row fieldRow) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(row.value) == "" {
			return copyFailedMsg{err: ErrNothingToCopy}
		}
		if err := copy(row.value); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{key: row.key}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
