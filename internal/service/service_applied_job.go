// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
)

// Pagination bounds of ListAppliedJobs.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// maxPage keeps (page-1)*limit within int32 for every allowed limit.
	maxPage = math.MaxInt32 / MaxPageLimit

	progressAll = "all"
)

type appliedJobService struct {
	appliedJobRepository store.AppliedJobRepository
	fileService          FileService
	uuid                 *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAppliedJobService returns the AppliedJobService backed by
// appliedJobRepository. Attachments of updated and deleted records are
// removed through fileService.
func NewAppliedJobService(appliedJobRepository store.AppliedJobRepository, fileService FileService, logger *logger.Logger) AppliedJobService {
	return &appliedJobService{
		appliedJobRepository: appliedJobRepository,
		fileService:          fileService,
		uuid:                 utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// CreateAppliedJob stores a new application owned by authorID. Progress
// defaults to "in progress" and stage status to "pending".
func (s *appliedJobService) CreateAppliedJob(ctx context.Context, authorID int64, request models.CreateAppliedJobRequest) (models.AppliedJob, error) {
	job := models.AppliedJob{
		JobID:       s.uuid.Generate(),
		AuthorID:    authorID,
		CompanyName: strings.TrimSpace(request.CompanyName),
		Position:    strings.TrimSpace(request.Position),
		AppliedDate: request.AppliedDate,
		Stages:      s.buildStages(request.Stages, nil),
		Contents:    request.Contents,
		Progress:    request.Progress,
		FileURLs:    request.FileURLs,
	}
	if job.Progress == "" {
		job.Progress = models.ProgressInProgress
	}
	if job.FileURLs == nil {
		job.FileURLs = []string{}
	}

	if err := checkAppliedJob(job); err != nil {
		return models.AppliedJob{}, err
	}
	if err := s.checkFileURLs(job.FileURLs, nil); err != nil {
		return models.AppliedJob{}, err
	}

	created, err := s.appliedJobRepository.CreateAppliedJob(ctx, job)
	if err != nil {
		return models.AppliedJob{}, s.mapStoreError(ctx, "appliedJobService.CreateAppliedJob", err)
	}

	return created, nil
}

// ListAppliedJobs returns one page of the author's applications, newest
// first. page below 1 becomes 1, limit below 1 becomes [DefaultPageLimit]
// and limit above [MaxPageLimit] is clamped. Pages past maxPage are
// clamped as well; they are empty for any realistic history.
func (s *appliedJobService) ListAppliedJobs(ctx context.Context, authorID int64, progress string, page, limit int) (models.AppliedJobPage, error) {
	filter := models.AppliedJobFilter{AuthorID: authorID, Page: page, Limit: limit}

	switch progress = strings.TrimSpace(progress); progress {
	case "", progressAll:
	default:
		if !models.Progress(progress).IsValid() {
			return models.AppliedJobPage{}, fmt.Errorf("%w: unknown progress %q", ErrInvalidArgument, progress)
		}
		filter.Progress = models.Progress(progress)
	}

	filter.Page = min(max(filter.Page, 1), maxPage)
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	filter.Limit = min(filter.Limit, MaxPageLimit)

	jobs, total, err := s.appliedJobRepository.ListAppliedJobs(ctx, filter)
	if err != nil {
		return models.AppliedJobPage{}, s.mapStoreError(ctx, "appliedJobService.ListAppliedJobs", err)
	}
	if jobs == nil {
		jobs = []models.AppliedJob{}
	}

	return models.AppliedJobPage{
		Data:       jobs,
		Pagination: models.NewPagination(total, filter.Page, filter.Limit),
	}, nil
}

func (s *appliedJobService) GetAppliedJob(ctx context.Context, authorID int64, jobID string) (models.AppliedJob, error) {
	job, err := s.appliedJobRepository.GetAppliedJob(ctx, authorID, jobID)
	if err != nil {
		return models.AppliedJob{}, s.mapStoreError(ctx, "appliedJobService.GetAppliedJob", err)
	}
	return job, nil
}

// UpdateAppliedJob changes only the supplied fields. A supplied stage list
// replaces the stored one; stages keep their id when it names an existing
// stage. Attachments dropped from the file list are deleted after the
// write succeeded.
func (s *appliedJobService) UpdateAppliedJob(ctx context.Context, authorID int64, jobID string, request models.UpdateAppliedJobRequest) (models.AppliedJob, error) {
	if request.IsEmpty() {
		return models.AppliedJob{}, fmt.Errorf("%w: no fields to update", ErrInvalidArgument)
	}

	existing, err := s.appliedJobRepository.GetAppliedJob(ctx, authorID, jobID)
	if err != nil {
		return models.AppliedJob{}, s.mapStoreError(ctx, "appliedJobService.UpdateAppliedJob", err)
	}

	update := models.AppliedJobUpdate{
		CompanyName: trimmed(request.CompanyName),
		Position:    trimmed(request.Position),
		AppliedDate: request.AppliedDate,
		Contents:    request.Contents,
		Progress:    request.Progress,
		FileURLs:    request.FileURLs,
	}
	if request.Stages != nil {
		stages := s.buildStages(*request.Stages, existing.Stages)
		update.Stages = &stages
	}
	if err = checkUpdate(update); err != nil {
		return models.AppliedJob{}, err
	}
	if update.FileURLs != nil {
		if err = s.checkFileURLs(*update.FileURLs, existing.FileURLs); err != nil {
			return models.AppliedJob{}, err
		}
	}

	updated, err := s.appliedJobRepository.UpdateAppliedJob(ctx, authorID, jobID, update)
	if err != nil {
		return models.AppliedJob{}, s.mapStoreError(ctx, "appliedJobService.UpdateAppliedJob", err)
	}

	if request.FileURLs != nil {
		deleteFiles(ctx, s.fileService, removedURLs(existing.FileURLs, updated.FileURLs))
	}

	return updated, nil
}

// UpdateStageStatus sets the status of a single stage of an owned job in
// one scoped write.
func (s *appliedJobService) UpdateStageStatus(ctx context.Context, authorID int64, jobID, stageID string, request models.StageStatusUpdateRequest) (models.AppliedJob, error) {
	if !request.Status.IsValid() {
		return models.AppliedJob{}, fmt.Errorf("%w: unknown stage status %q", ErrInvalidArgument, request.Status)
	}

	job, err := s.appliedJobRepository.UpdateStageStatus(ctx, authorID, jobID, stageID, request.Status)
	if err != nil {
		return models.AppliedJob{}, s.mapStoreError(ctx, "appliedJobService.UpdateStageStatus", err)
	}

	return job, nil
}

// DeleteAppliedJob removes every attachment best-effort and then the record.
func (s *appliedJobService) DeleteAppliedJob(ctx context.Context, authorID int64, jobID string) error {
	existing, err := s.appliedJobRepository.GetAppliedJob(ctx, authorID, jobID)
	if err != nil {
		return s.mapStoreError(ctx, "appliedJobService.DeleteAppliedJob", err)
	}

	deleteFiles(ctx, s.fileService, existing.FileURLs)

	if err = s.appliedJobRepository.DeleteAppliedJob(ctx, authorID, jobID); err != nil {
		return s.mapStoreError(ctx, "appliedJobService.DeleteAppliedJob", err)
	}

	return nil
}

// buildStages converts client stages, reusing ids of existing stages and
// generating new ones otherwise. An existing id is reused at most once.
func (s *appliedJobService) buildStages(inputs []models.StageInput, existing []models.Stage) []models.Stage {
	known := make(map[string]struct{}, len(existing))
	for _, stage := range existing {
		known[stage.StageID] = struct{}{}
	}
	used := make(map[string]struct{}, len(inputs))

	stages := make([]models.Stage, 0, len(inputs))
	for _, input := range inputs {
		stage := models.Stage{
			StageID: input.StageID,
			Order:   input.Order,
			Name:    strings.TrimSpace(input.Name),
			Status:  input.Status,
		}
		_, isKnown := known[stage.StageID]
		_, isUsed := used[stage.StageID]
		if !isKnown || isUsed {
			stage.StageID = s.uuid.Generate()
		}
		used[stage.StageID] = struct{}{}
		if stage.Status == "" {
			stage.Status = models.StageStatusPending
		}
		stages = append(stages, stage)
	}

	return stages
}

func (s *appliedJobService) mapStoreError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, store.ErrAppliedJobNotFound), errors.Is(err, store.ErrStageNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, store.ErrInvalidRecord):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	default:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("applied job storage failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// checkAppliedJob enforces the record invariants independently of the
// request schema.
func checkAppliedJob(job models.AppliedJob) error {
	if job.CompanyName == "" || job.Position == "" {
		return fmt.Errorf("%w: companyName and position are required", ErrInvalidArgument)
	}
	if !job.Progress.IsValid() {
		return fmt.Errorf("%w: unknown progress %q", ErrInvalidArgument, job.Progress)
	}
	return checkStages(job.Stages)
}

func checkUpdate(update models.AppliedJobUpdate) error {
	if update.CompanyName != nil && *update.CompanyName == "" {
		return fmt.Errorf("%w: companyName must not be empty", ErrInvalidArgument)
	}
	if update.Position != nil && *update.Position == "" {
		return fmt.Errorf("%w: position must not be empty", ErrInvalidArgument)
	}
	if update.Progress != nil && !update.Progress.IsValid() {
		return fmt.Errorf("%w: unknown progress %q", ErrInvalidArgument, *update.Progress)
	}
	if update.Stages != nil {
		return checkStages(*update.Stages)
	}
	return nil
}

func checkStages(stages []models.Stage) error {
	for i, stage := range stages {
		if stage.Order < 1 {
			return fmt.Errorf("%w: stage %d: order must be at least 1", ErrInvalidArgument, i)
		}
		if stage.Name == "" {
			return fmt.Errorf("%w: stage %d: name is required", ErrInvalidArgument, i)
		}
		if !stage.Status.IsValid() {
			return fmt.Errorf("%w: stage %d: unknown status %q", ErrInvalidArgument, i, stage.Status)
		}
	}
	return nil
}

// checkFileURLs rejects attachment URLs that were not issued by the file
// service. URLs already stored on the record are accepted as they are.
func (s *appliedJobService) checkFileURLs(urls, stored []string) error {
	for i, fileURL := range urls {
		if slices.Contains(stored, fileURL) {
			continue
		}
		if err := s.fileService.Validate(fileURL); err != nil {
			return fmt.Errorf("fileUrl %d: %w", i, err)
		}
	}
	return nil
}

// removedURLs returns the elements of before missing from after.
func removedURLs(before, after []string) []string {
	var removed []string
	for _, fileURL := range before {
		if !slices.Contains(after, fileURL) {
			removed = append(removed, fileURL)
		}
	}
	return removed
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
