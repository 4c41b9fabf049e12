// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/models"
)

type userService struct {
	userRepository       store.UserRepository
	appliedJobRepository store.AppliedJobRepository
	fileService          FileService

	admins map[string]struct{}

	logger *logger.Logger
}

// NewUserService returns a UserService. Callers named in adminUsernames may
// delete any account.
func NewUserService(userRepository store.UserRepository, appliedJobRepository store.AppliedJobRepository, fileService FileService, adminUsernames []string, logger *logger.Logger) UserService {
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, name := range adminUsernames {
		if name != "" {
			admins[name] = struct{}{}
		}
	}

	return &userService{
		userRepository:       userRepository,
		appliedJobRepository: appliedJobRepository,
		fileService:          fileService,
		admins:               admins,
		logger:               logger,
	}
}

// DeleteUser removes userID with its applications. Attachments are deleted
// best-effort first; the records cascade with the user row.
func (s *userService) DeleteUser(ctx context.Context, caller models.SessionUser, userID int64) error {
	log := logger.FromContext(ctx).With().
		Str("func", "userService.DeleteUser").
		Int64("caller_id", caller.UserID).
		Int64("user_id", userID).
		Logger()

	if _, isAdmin := s.admins[caller.Username]; caller.UserID != userID && !isAdmin {
		return fmt.Errorf("%w: only the account owner or an admin may delete it", ErrForbidden)
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Msg("user search by id failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	jobs, err := s.appliedJobRepository.ListAllAppliedJobs(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list applied jobs, attachments stay orphaned")
	}
	for _, job := range jobs {
		deleteFiles(ctx, s.fileService, job.FileURLs)
	}

	if err = s.userRepository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		log.Err(err).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Msg("user deleted")
	return nil
}
