// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package client

import (
	"context"
	"errors"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/tui"
	"github.com/MyungJiwoo/career-log/models"
)

// UI is the part of the terminal front end the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.User, error)
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is required")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run alternates between the login flow and the main loop until the user
// quits. Logging out returns to the login flow.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("username", user.Username).Msg("logged out")
	}
}
