// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package tui is the terminal front end of career-log built on Bubble Tea.
//
// [TUI.LoginFlow] runs the menu, login and signup pages until a session is
// established. [TUI.MainLoop] then runs the application list, detail,
// create and statistics screens against the API.
package tui

import (
	"context"
	"errors"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if api == nil {
		return nil, errors.New("tui: server adapter is required")
	}
	return &TUI{api: api, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow blocks until the user logs in or quits. Quitting returns
// [ErrUserQuit].
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.api),
		pageRegister: NewRegisterModel(ctx, t.api),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("username", result.user.Username).Msg("logged in")
	return result.user, nil
}

// MainLoop runs the application screens for user. logout reports whether the
// user ended the session rather than quitting.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.api, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
