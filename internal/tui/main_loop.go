// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/categorizer"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
	screenStats
)

const (
	listPageSize     = 10
	statusVisibleFor = 3 * time.Second
)

var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx  context.Context
	api  adapter.ServerAdapter
	user models.User

	screen  screen
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	list   listState
	detail detailState
	create createForm
	stats  models.Statistics

	categories *categorizer.Categorizer

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, api adapter.ServerAdapter, user models.User) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:     ctx,
		api:     api,
		user:    user,
		screen:  screenList,
		loading: true,
		spinner: s,
		list:    listState{page: 1},
		create:  newCreateForm(),

		categories: categorizer.New(nil),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadPage())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case pageLoadedMsg:
		m.loading = false
		if m.handleErr(msg.err) {
			return m, m.quitIfLoggedOut()
		}
		m.list.setPage(msg.page)
		return m, nil
	case jobLoadedMsg:
		m.loading = false
		if m.handleErr(msg.err) {
			return m, m.quitIfLoggedOut()
		}
		m.detail.setJob(msg.job)
		m.screen = screenDetail
		return m, nil
	case jobCreatedMsg:
		m.loading = false
		m.create.submitting = false
		if m.handleErr(msg.err) {
			return m, m.quitIfLoggedOut()
		}
		m.create = newCreateForm()
		m.detail.setJob(msg.job)
		m.screen = screenDetail
		cmd := m.flash("application " + msg.job.CompanyName + " created")
		return m, cmd
	case jobDeletedMsg:
		if m.handleErr(msg.err) {
			return m, m.quitIfLoggedOut()
		}
		m.screen = screenList
		m.loading = true
		cmd := m.flash("application deleted")
		return m, tea.Batch(cmd, m.cmdLoadPage())
	case statsLoadedMsg:
		m.loading = false
		if m.handleErr(msg.err) {
			return m, m.quitIfLoggedOut()
		}
		m.stats = msg.stats
		m.screen = screenStats
		return m, nil
	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenCreate {
			return m.updateCreate(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.detail.job.JobID)
		case key.Matches(keyMsg, keys.no):
			m.showConfirm = false
		}
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenCreate:
		return m.updateCreate(keyMsg)
	case screenStats:
		return m.updateStats(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case screenDetail:
		body = m.viewDetail()
	case screenCreate:
		body = m.viewCreate()
	case screenStats:
		body = m.viewStats()
	default:
		body = m.viewList()
	}

	switch {
	case m.showError:
		return lipgloss.JoinVertical(lipgloss.Left, body, m.errorOverlay.View())
	case m.showConfirm:
		return lipgloss.JoinVertical(lipgloss.Left, body, m.confirm.View())
	}
	return body
}

// handleErr reports whether err was non-nil. Unauthorized errors end the
// session; anything else opens the error overlay.
func (m *mainLoopModel) handleErr(err error) bool {
	if err == nil {
		m.errMsg = ""
		return false
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		m.logout = true
		return true
	}
	m.errMsg = humanizeError(err)
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: m.errMsg}
	return true
}

func (m mainLoopModel) quitIfLoggedOut() tea.Cmd {
	if m.logout {
		return tea.Quit
	}
	return nil
}

// flash shows msg in the status line until statusVisibleFor elapses.
func (m *mainLoopModel) flash(msg string) tea.Cmd {
	m.status = msg
	return tea.Tick(statusVisibleFor, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) header(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("  ·  ")
	b.WriteString(m.user.Username)
	if m.loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	return b.String()
}

func (m mainLoopModel) footer() string {
	if m.status == "" {
		return ""
	}
	return "\n\n" + statusStyle.Render(m.status)
}

func (m mainLoopModel) cmdLoadPage() tea.Cmd {
	ctx, api := m.ctx, m.api
	progress, page := m.list.progress, m.list.page

	return func() tea.Msg {
		result, err := api.ListAppliedJobs(ctx, progress, page, listPageSize)
		return pageLoadedMsg{page: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadJob(jobID string) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		job, err := api.GetAppliedJob(ctx, jobID)
		return jobLoadedMsg{job: job, err: err}
	}
}

func (m mainLoopModel) cmdSetStageStatus(jobID, stageID string, status models.StageStatus) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		job, err := api.UpdateStageStatus(ctx, jobID, stageID, status)
		return jobLoadedMsg{job: job, err: err}
	}
}

func (m mainLoopModel) cmdDelete(jobID string) tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		return jobDeletedMsg{err: api.DeleteAppliedJob(ctx, jobID)}
	}
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		stats, err := api.Statistics(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// cmdLogout always finishes the session locally, even when the server call fails.
func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, api := m.ctx, m.api

	return func() tea.Msg {
		return logoutDoneMsg{err: api.Logout(ctx)}
	}
}
