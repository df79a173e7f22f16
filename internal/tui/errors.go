// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrNothingToCopy is reported when the selected row has an empty value.
var ErrNothingToCopy = errors.New("nothing to copy")

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}

	if clipboard.Unsupported {
		return "Clipboard is not available: install xclip, xsel or wl-clipboard"
	}

	return err.Error()
}
