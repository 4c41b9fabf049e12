// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"fmt"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/categorizer"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type detailState struct {
	job      models.AppliedJob
	stageIdx int
	fileIdx  int
}

func (d *detailState) setJob(job models.AppliedJob) {
	d.job = job
	if d.stageIdx >= len(job.Stages) {
		d.stageIdx = max(len(job.Stages)-1, 0)
	}
	if d.fileIdx >= len(job.FileURLs) {
		d.fileIdx = max(len(job.FileURLs)-1, 0)
	}
}

// nextStageStatus cycles pending → pass → nonpass → pending.
func nextStageStatus(s models.StageStatus) models.StageStatus {
	switch s {
	case models.StageStatusPending:
		return models.StageStatusPass
	case models.StageStatusPass:
		return models.StageStatusNonPass
	default:
		return models.StageStatusPending
	}
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	job := m.detail.job

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
		m.detail = detailState{}
		m.loading = true
		return m, m.cmdLoadPage()
	case key.Matches(msg, keys.up):
		if m.detail.stageIdx > 0 {
			m.detail.stageIdx--
		}
	case key.Matches(msg, keys.down):
		if m.detail.stageIdx < len(job.Stages)-1 {
			m.detail.stageIdx++
		}
	case key.Matches(msg, keys.left):
		if m.detail.fileIdx > 0 {
			m.detail.fileIdx--
		}
	case key.Matches(msg, keys.right):
		if m.detail.fileIdx < len(job.FileURLs)-1 {
			m.detail.fileIdx++
		}
	case key.Matches(msg, keys.status):
		if len(job.Stages) == 0 {
			return m, nil
		}
		stage := job.Stages[m.detail.stageIdx]
		m.loading = true
		return m, m.cmdSetStageStatus(job.JobID, stage.StageID, nextStageStatus(stage.Status))
	case key.Matches(msg, keys.copy):
		if len(job.FileURLs) == 0 {
			cmd := m.flash("no attachment to copy")
			return m, cmd
		}
		if err := copyToClipboard(job.FileURLs[m.detail.fileIdx]); err != nil {
			m.handleErr(fmt.Errorf("copy to clipboard: %w", err))
			return m, nil
		}
		cmd := m.flash("attachment URL copied")
		return m, cmd
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadJob(job.JobID)
	case key.Matches(msg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{message: job.CompanyName + " · " + job.Position}
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	job := m.detail.job
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Company:   %s\n", job.CompanyName))
	b.WriteString(fmt.Sprintf("Position:  %s\n", job.Position))
	b.WriteString(fmt.Sprintf("Applied:   %s\n", dateOrDash(job.AppliedDate)))
	b.WriteString(fmt.Sprintf("Progress:  %s\n", job.Progress))
	b.WriteString(fmt.Sprintf("Updated:   %s\n", job.UpdatedAt.Local().Format("2006-01-02 15:04")))

	b.WriteString("\nStages\n")
	if len(job.Stages) == 0 {
		b.WriteString("  -\n")
	}
	for i, stage := range job.Stages {
		cursor := "  "
		if i == m.detail.stageIdx {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%d. %s %s", cursor, stage.Order, statusIcon(stage.Status), stage.Name)
		if tags := m.categories.Categorize(stage.Name); len(tags) > 0 {
			row += helpStyle.Render(" · " + joinCategories(tags))
		}
		if i == m.detail.stageIdx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	b.WriteString("\nAttachments\n")
	if len(job.FileURLs) == 0 {
		b.WriteString("  -\n")
	}
	for i, url := range job.FileURLs {
		cursor := "  "
		if i == m.detail.fileIdx {
			cursor = "> "
		}
		b.WriteString(cursor + fitText(url, 70) + "\n")
	}

	if strings.TrimSpace(job.Contents) != "" {
		b.WriteString("\nNotes\n")
		b.WriteString(job.Contents)
		b.WriteString("\n")
	}

	b.WriteString(m.footer())

	return renderPage(
		m.header(fmt.Sprintf("APPLICATION #%d", job.Number)),
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: stage │ space: cycle status │ ←/→: attachment │ c: copy URL │ ctrl+d: delete │ r: reload │ esc: back",
	)
}

func joinCategories(categories []categorizer.Category) string {
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = string(category)
	}
	return strings.Join(names, ", ")
}
