// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadStats()
	}
	return m, nil
}

func (m mainLoopModel) viewStats() string {
	s := m.stats
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Category", "Pass rate  (attempts)"))
	b.WriteString(strings.Repeat("─", 13) + "┼" + strings.Repeat("─", 24) + "\n")
	b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Overall", formatRate(s.TotalPassRate, s.TotalApplications)))
	b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Documents", formatRate(s.DocumentPassRate, s.TotalDocumentApplications)))
	b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Coding test", formatRate(s.CodingTestPassRate, s.TotalCodingTestAttempts)))
	b.WriteString(fmt.Sprintf("%-12s │ %s\n", "Assignment", formatRate(s.AssignmentPassRate, s.TotalAssignmentAttempts)))
	b.WriteString(fmt.Sprintf("%-12s │ %s", "Interview", formatRate(s.InterviewPassRate, s.TotalInterviewAttempts)))

	return renderPage(m.header("STATISTICS"), b.String(), "r: reload │ esc: back")
}
