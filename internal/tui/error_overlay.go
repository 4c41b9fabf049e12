// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(errorStyle.Render(content))
}
