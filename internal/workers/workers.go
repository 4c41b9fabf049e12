// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package workers

import (
	"context"
	"sync"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the enabled workers. A negative sweep interval leaves the
// session sweeper out.
func NewWorkers(cfg config.Workers, storages *store.Storages, logger *logger.Logger) *Workers {
	w := new(Workers)
	if cfg.SessionSweepInterval >= 0 {
		w.workers = append(w.workers, NewSessionSweeper(storages.UserRepository, cfg.SessionSweepInterval, logger))
	} else {
		logger.Info().Msg("session sweeper disabled")
	}
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
