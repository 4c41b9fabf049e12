// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"fmt"
	"strings"

	"github.com/MyungJiwoo/career-log/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// progressFilters is the cycle order of the list filter. The empty value
// lists every application.
var progressFilters = []models.Progress{
	"",
	models.ProgressPending,
	models.ProgressInProgress,
	models.ProgressCompleted,
}

type listState struct {
	jobs       []models.AppliedJob
	pagination models.Pagination
	page       int
	progress   models.Progress
	idx        int
}

func (l *listState) setPage(page models.AppliedJobPage) {
	l.jobs = page.Data
	l.pagination = page.Pagination
	if page.Pagination.Page > 0 {
		l.page = page.Pagination.Page
	}
	if l.idx >= len(l.jobs) {
		l.idx = len(l.jobs) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l listState) current() (models.AppliedJob, bool) {
	if l.idx < 0 || l.idx >= len(l.jobs) {
		return models.AppliedJob{}, false
	}
	return l.jobs[l.idx], true
}

func nextProgressFilter(p models.Progress) models.Progress {
	for i, candidate := range progressFilters {
		if candidate == p {
			return progressFilters[(i+1)%len(progressFilters)]
		}
	}
	return progressFilters[0]
}

func progressLabel(p models.Progress) string {
	if p == "" {
		return "all"
	}
	return string(p)
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.jobs)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.left):
		if m.list.pagination.HasPrevPage {
			m.list.page--
			m.list.idx = 0
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case key.Matches(msg, keys.right):
		if m.list.pagination.HasNextPage {
			m.list.page++
			m.list.idx = 0
			m.loading = true
			return m, m.cmdLoadPage()
		}
	case key.Matches(msg, keys.filter):
		m.list.progress = nextProgressFilter(m.list.progress)
		m.list.page = 1
		m.list.idx = 0
		m.loading = true
		return m, m.cmdLoadPage()
	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdLoadPage()
	case key.Matches(msg, keys.enter):
		job, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadJob(job.JobID)
	case key.Matches(msg, keys.newItem):
		m.create = newCreateForm()
		m.screen = screenCreate
		return m, m.create.Init()
	case key.Matches(msg, keys.stats):
		m.loading = true
		return m, m.cmdLoadStats()
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Filter: %s\n\n", progressLabel(m.list.progress)))

	if len(m.list.jobs) == 0 {
		if m.loading {
			b.WriteString("Loading...")
		} else {
			b.WriteString("No applications yet")
		}
	} else {
		b.WriteString(fmt.Sprintf("  %-4s │ %-20s │ %-20s │ %-10s │ %s\n", "No", "Company", "Position", "Applied", "Progress"))
		b.WriteString("  " + strings.Repeat("─", 76) + "\n")
		for i, job := range m.list.jobs {
			cursor := " "
			if i == m.list.idx {
				cursor = ">"
			}
			row := fmt.Sprintf("%s %-4d │ %-20s │ %-20s │ %-10s │ %s",
				cursor,
				job.Number,
				fitText(job.CompanyName, 20),
				fitText(job.Position, 20),
				dateOrDash(job.AppliedDate),
				job.Progress,
			)
			if i == m.list.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row + "\n")
		}

		p := m.list.pagination
		b.WriteString(fmt.Sprintf("\nPage %d/%d · %d total", p.Page, max(p.TotalPages, 1), p.Total))
	}

	b.WriteString(m.footer())

	return renderPage(
		m.header("APPLICATIONS"),
		b.String(),
		"enter: open │ n: new │ f: filter │ ←/→: page │ s: stats │ r: reload │ L: logout │ q: quit",
	)
}
