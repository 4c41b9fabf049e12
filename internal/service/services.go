// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/categorizer"
	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	AppliedJobService AppliedJobService
	StatisticsService StatisticsService
	FileService       FileService
}

func NewServices(storages *store.Storages, ipLookup adapter.IPLookup, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator, err := validators.NewSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating validator: %w", err)
	}

	fileService := NewFileService(storages.BlobStorage, cfg.Storage.Blob, logger)
	appliedJobService := NewAppliedJobValidationService(validator).
		Wrap(NewAppliedJobService(storages.AppliedJobRepository, fileService, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, ipLookup, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, storages.AppliedJobRepository, fileService, cfg.App.AdminUsernames, logger),
		AppliedJobService: appliedJobService,
		StatisticsService: NewStatisticsService(storages.AppliedJobRepository, categorizer.New(cfg.Statistics.Keywords), logger),
		FileService:       fileService,
	}, nil
}
