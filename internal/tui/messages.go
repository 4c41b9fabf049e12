// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"github.com/MyungJiwoo/career-log/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches [RootModel] to Page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow when Err is nil.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult is produced by the signup command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown by the menu after a successful signup.
type RegisterSuccessNotice struct {
	Username string
}

type pageLoadedMsg struct {
	page models.AppliedJobPage
	err  error
}

type jobLoadedMsg struct {
	job models.AppliedJob
	err error
}

type jobCreatedMsg struct {
	job models.AppliedJob
	err error
}

type jobDeletedMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.Statistics
	err   error
}

type logoutDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
