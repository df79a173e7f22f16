package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/coffee-shop/internal/config"
)

// loginCallbackPath is the front-end page the identity provider redirects
// to after login.
const loginCallbackPath = "/tabs/user-page"

// fieldRow is one line of the inspector. Derived rows are computed from the
// configuration rather than stored in it.
type fieldRow struct {
	key     string
	value   string
	derived bool
}

// rowsFor lists the six configuration values followed by the values derived
// from the identity-provider settings.
func rowsFor(env config.Environment) []fieldRow {
	fields := env.Fields()
	rows := make([]fieldRow, 0, len(fields)+4)
	for _, f := range fields {
		rows = append(rows, fieldRow{key: f.Key, value: f.Value})
	}

	auth0 := env.Auth0()
	rows = append(rows,
		fieldRow{key: "domain", value: auth0.Domain(), derived: true},
		fieldRow{key: "issuer", value: auth0.Issuer(), derived: true},
		fieldRow{key: "keySetURL", value: auth0.KeySetURL(), derived: true},
		fieldRow{key: "loginURL", value: auth0.LoginURL(loginCallbackPath), derived: true},
	)
	return rows
}

type listModel struct {
	rows []fieldRow
	idx  int
}

func newListModel(env config.Environment) listModel {
	return listModel{rows: rowsFor(env)}
}

func (m listModel) current() (fieldRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return fieldRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.rows)-1 {
		m.idx++
	}
}

// View renders the rows; values longer than width are cut.
func (m listModel) View(width int) string {
	keyWidth := 0
	for _, row := range m.rows {
		keyWidth = max(keyWidth, len(row.key))
	}

	valueWidth := 0
	if width > 0 {
		valueWidth = max(width-keyWidth-8, 10)
	}

	var b strings.Builder
	derivedShown := false
	for i, row := range m.rows {
		if row.derived && !derivedShown {
			derivedShown = true
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render("derived"))
			b.WriteString("\n")
		}

		cursor := "  "
		line := fmt.Sprintf("%s  %s", keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, row.key)), fitText(row.value, valueWidth))
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(fmt.Sprintf("%-*s  %s", keyWidth, row.key, fitText(row.value, valueWidth)))
		}

		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
