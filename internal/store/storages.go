// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
)

// Storages groups all server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	DB *DB

	UserRepository       UserRepository
	AppliedJobRepository AppliedJobRepository
	BlobStorage          BlobStorage

	// FilesDir is the directory exposed under /files, empty unless the local
	// blob backend is in use.
	FilesDir string
}

// NewStorages initialises the storage layer:
//  1. Connects to PostgreSQL, retrying transient failures.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Builds the repositories and the configured blob backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, errors.Join(fmt.Errorf("migration failed: %w", err), db.Close())
	}

	blobs, err := NewBlobStorage(ctx, cfg.Blob, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("blob storage error: %w", err), db.Close())
	}

	storages := &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		AppliedJobRepository: NewAppliedJobRepository(db, log),
		BlobStorage:          blobs,
	}
	if local, ok := blobs.(*localBlobStorage); ok {
		storages.FilesDir = local.Dir()
	}

	return storages, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
