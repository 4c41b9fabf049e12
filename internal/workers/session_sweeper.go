// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package workers

import (
	"context"
	"time"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
)

const defaultSweepInterval = time.Hour

// SessionSweeper periodically clears refresh tokens that have already expired,
// so stale sessions do not linger in the users table.
type SessionSweeper struct {
	users    store.UserRepository
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionSweeper(users store.UserRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval == 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		users:    users,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	cleared, err := s.users.ClearExpiredSessions(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("clearing expired sessions failed")
		}
		return
	}
	if cleared > 0 {
		s.logger.Debug().Int64("cleared", cleared).Msg("expired sessions cleared")
	}
}
