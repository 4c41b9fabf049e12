// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/validators"
	"github.com/MyungJiwoo/career-log/models"
)

// AppliedJobValidationService checks request payloads against their
// schemas before delegating to the wrapped AppliedJobService.
type AppliedJobValidationService struct {
	inner     AppliedJobService
	validator validators.Validator
}

func NewAppliedJobValidationService(validator validators.Validator) AppliedJobServiceWrapper {
	return &AppliedJobValidationService{
		validator: validator,
	}
}

func (v *AppliedJobValidationService) CreateAppliedJob(ctx context.Context, authorID int64, request models.CreateAppliedJobRequest) (models.AppliedJob, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v.inner.CreateAppliedJob(ctx, authorID, request)
}

func (v *AppliedJobValidationService) ListAppliedJobs(ctx context.Context, authorID int64, progress string, page, limit int) (models.AppliedJobPage, error) {
	return v.inner.ListAppliedJobs(ctx, authorID, progress, page, limit)
}

func (v *AppliedJobValidationService) GetAppliedJob(ctx context.Context, authorID int64, jobID string) (models.AppliedJob, error) {
	return v.inner.GetAppliedJob(ctx, authorID, jobID)
}

func (v *AppliedJobValidationService) UpdateAppliedJob(ctx context.Context, authorID int64, jobID string, request models.UpdateAppliedJobRequest) (models.AppliedJob, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v.inner.UpdateAppliedJob(ctx, authorID, jobID, request)
}

func (v *AppliedJobValidationService) UpdateStageStatus(ctx context.Context, authorID int64, jobID, stageID string, request models.StageStatusUpdateRequest) (models.AppliedJob, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v.inner.UpdateStageStatus(ctx, authorID, jobID, stageID, request)
}

func (v *AppliedJobValidationService) DeleteAppliedJob(ctx context.Context, authorID int64, jobID string) error {
	return v.inner.DeleteAppliedJob(ctx, authorID, jobID)
}

func (v *AppliedJobValidationService) Wrap(wrapped AppliedJobService) AppliedJobService {
	v.inner = wrapped
	return v
}
