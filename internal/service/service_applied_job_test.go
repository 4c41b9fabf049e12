// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/mock"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAuthorID int64 = 42

func newTestAppliedJobSvc(ctrl *gomock.Controller) (AppliedJobService, *mock.MockAppliedJobRepository, *mock.MockFileService) {
	repo := mock.NewMockAppliedJobRepository(ctrl)
	files := mock.NewMockFileService(ctrl)
	return NewAppliedJobService(repo, files, logger.Nop()), repo, files
}

func ptr[T any](v T) *T {
	return &v
}

// ── CreateAppliedJob ─────────────────────────────────────────────────────────

func TestAppliedJobService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().CreateAppliedJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job models.AppliedJob) (models.AppliedJob, error) {
			assert.NotEmpty(t, job.JobID)
			assert.Equal(t, testAuthorID, job.AuthorID)
			assert.Equal(t, "Acme", job.CompanyName)
			assert.Equal(t, models.ProgressInProgress, job.Progress)
			assert.NotNil(t, job.FileURLs)
			require.Len(t, job.Stages, 1)
			assert.NotEmpty(t, job.Stages[0].StageID)
			assert.Equal(t, models.StageStatusPending, job.Stages[0].Status)
			return job, nil
		},
	)

	job, err := svc.CreateAppliedJob(context.Background(), testAuthorID, models.CreateAppliedJobRequest{
		CompanyName: " Acme ",
		Position:    "Intern",
		Stages:      []models.StageInput{{Order: 1, Name: "서류"}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProgressInProgress, job.Progress)
}

func TestAppliedJobService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		request models.CreateAppliedJobRequest
	}{
		{name: "blank company", request: models.CreateAppliedJobRequest{CompanyName: "  ", Position: "Intern"}},
		{name: "bad progress", request: models.CreateAppliedJobRequest{CompanyName: "Acme", Position: "Intern", Progress: "done"}},
		{name: "stage order", request: models.CreateAppliedJobRequest{CompanyName: "Acme", Position: "Intern", Stages: []models.StageInput{{Order: 0, Name: "x"}}}},
		{name: "stage status", request: models.CreateAppliedJobRequest{CompanyName: "Acme", Position: "Intern", Stages: []models.StageInput{{Order: 1, Name: "x", Status: "fail"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestAppliedJobSvc(ctrl)
			repo.EXPECT().CreateAppliedJob(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.CreateAppliedJob(context.Background(), testAuthorID, tt.request)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestAppliedJobService_Create_UnknownAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().CreateAppliedJob(gomock.Any(), gomock.Any()).Return(models.AppliedJob{}, store.ErrNoUserWasFound)

	_, err := svc.CreateAppliedJob(context.Background(), testAuthorID, models.CreateAppliedJobRequest{CompanyName: "Acme", Position: "Intern"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAppliedJobService_Create_KeepsContentsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	contents := "  ## 회고\n\n- 코딩 테스트\n  "
	repo.EXPECT().CreateAppliedJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job models.AppliedJob) (models.AppliedJob, error) {
			assert.Equal(t, contents, job.Contents)
			return job, nil
		},
	)

	_, err := svc.CreateAppliedJob(context.Background(), testAuthorID, models.CreateAppliedJobRequest{
		CompanyName: "Acme",
		Position:    "Intern",
		Contents:    contents,
	})
	require.NoError(t, err)
}

func TestAppliedJobService_Create_ValidatesFileURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	gomock.InOrder(
		files.EXPECT().Validate("https://cdn/post-files/u/cv.pdf").Return(nil),
		files.EXPECT().Validate("https://bucket.s3.us-east-1.amazonaws.com/backups/db.dump").
			Return(fmt.Errorf("%w: %w", ErrInvalidArgument, store.ErrInvalidBlobURL)),
	)
	repo.EXPECT().CreateAppliedJob(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateAppliedJob(context.Background(), testAuthorID, models.CreateAppliedJobRequest{
		CompanyName: "Acme",
		Position:    "Intern",
		FileURLs: []string{
			"https://cdn/post-files/u/cv.pdf",
			"https://bucket.s3.us-east-1.amazonaws.com/backups/db.dump",
		},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ── ListAppliedJobs ──────────────────────────────────────────────────────────

func TestAppliedJobService_List_ClampsPaging(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		progress  string
		wantPage  int
		wantLimit int
		wantProg  models.Progress
	}{
		{name: "limit above max", page: 0, limit: 500, wantPage: 1, wantLimit: MaxPageLimit},
		{name: "defaults", page: -3, limit: 0, wantPage: 1, wantLimit: DefaultPageLimit},
		{name: "all filter", page: 2, limit: 5, progress: "all", wantPage: 2, wantLimit: 5},
		{name: "progress filter", page: 1, limit: 10, progress: "completed", wantPage: 1, wantLimit: 10, wantProg: models.ProgressCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestAppliedJobSvc(ctrl)

			repo.EXPECT().ListAppliedJobs(gomock.Any(), models.AppliedJobFilter{
				AuthorID: testAuthorID,
				Progress: tt.wantProg,
				Page:     tt.wantPage,
				Limit:    tt.wantLimit,
			}).Return(nil, int64(0), nil)

			page, err := svc.ListAppliedJobs(context.Background(), testAuthorID, tt.progress, tt.page, tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, page.Data)
			assert.Equal(t, tt.wantPage, page.Pagination.Page)
			assert.Equal(t, tt.wantLimit, page.Pagination.Limit)
		})
	}
}

func TestAppliedJobService_List_ClampsHugePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().ListAppliedJobs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter models.AppliedJobFilter) ([]models.AppliedJob, int64, error) {
			assert.Equal(t, maxPage, filter.Page)
			assert.Positive(t, filter.Offset())
			assert.LessOrEqual(t, filter.Offset(), math.MaxInt32)
			return nil, 0, nil
		},
	)

	_, err := svc.ListAppliedJobs(context.Background(), testAuthorID, "", math.MaxInt, MaxPageLimit)
	require.NoError(t, err)
}

func TestAppliedJobService_List_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().ListAppliedJobs(gomock.Any(), gomock.Any()).Return([]models.AppliedJob{{JobID: "a"}}, int64(21), nil)

	page, err := svc.ListAppliedJobs(context.Background(), testAuthorID, "", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{Total: 21, Page: 2, Limit: 10, TotalPages: 3, HasNextPage: true, HasPrevPage: true}, page.Pagination)
}

func TestAppliedJobService_List_InvalidProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)
	repo.EXPECT().ListAppliedJobs(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListAppliedJobs(context.Background(), testAuthorID, "archived", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ── GetAppliedJob ────────────────────────────────────────────────────────────

func TestAppliedJobService_Get_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "other").Return(models.AppliedJob{}, store.ErrAppliedJobNotFound)

	_, err := svc.GetAppliedJob(context.Background(), testAuthorID, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppliedJobService_Get_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(models.AppliedJob{}, errors.New("connection reset"))

	_, err := svc.GetAppliedJob(context.Background(), testAuthorID, "id")
	assert.ErrorIs(t, err, ErrInternal)
}

// ── UpdateAppliedJob ─────────────────────────────────────────────────────────

func TestAppliedJobService_Update_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)
	repo.EXPECT().GetAppliedJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAppliedJobService_Update_DeletesDroppedFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	existing := models.AppliedJob{
		JobID:    "id",
		FileURLs: []string{"https://cdn/a.pdf", "https://cdn/b.pdf"},
		Stages:   []models.Stage{{StageID: "s1", Order: 1, Name: "서류", Status: models.StageStatusPass}},
	}

	gomock.InOrder(
		repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(existing, nil),
		files.EXPECT().Validate("https://cdn/c.pdf").Return(nil),
		repo.EXPECT().UpdateAppliedJob(gomock.Any(), testAuthorID, "id", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ string, update models.AppliedJobUpdate) (models.AppliedJob, error) {
				assert.Equal(t, "Beta", *update.CompanyName)
				assert.Nil(t, update.Position)
				require.NotNil(t, update.Stages)
				stages := *update.Stages
				require.Len(t, stages, 2)
				assert.Equal(t, "s1", stages[0].StageID, "known stage keeps its id")
				assert.NotEqual(t, "unknown", stages[1].StageID, "foreign id is replaced")
				assert.Equal(t, models.StageStatusPending, stages[1].Status)

				updated := existing
				updated.CompanyName = *update.CompanyName
				updated.FileURLs = *update.FileURLs
				updated.Stages = stages
				return updated, nil
			},
		),
		files.EXPECT().Delete(gomock.Any(), "https://cdn/a.pdf").Return(nil),
	)

	updated, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{
		CompanyName: ptr(" Beta "),
		Stages: &[]models.StageInput{
			{StageID: "s1", Order: 1, Name: "서류", Status: models.StageStatusPass},
			{StageID: "unknown", Order: 2, Name: "면접"},
		},
		FileURLs: &[]string{"https://cdn/b.pdf", "https://cdn/c.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Beta", updated.CompanyName)
}

func TestAppliedJobService_Update_KeepsFilesWhenListAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	existing := models.AppliedJob{JobID: "id", FileURLs: []string{"https://cdn/a.pdf"}}
	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(existing, nil)
	repo.EXPECT().UpdateAppliedJob(gomock.Any(), testAuthorID, "id", gomock.Any()).Return(existing, nil)
	files.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{Contents: ptr("notes")})
	require.NoError(t, err)
}

func TestAppliedJobService_Update_RejectsForeignFileURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	existing := models.AppliedJob{JobID: "id", FileURLs: []string{"https://cdn/post-files/u/a.pdf"}}
	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(existing, nil)
	files.EXPECT().Validate("/backups/other.dump").Return(fmt.Errorf("%w: %w", ErrInvalidArgument, store.ErrInvalidBlobURL))
	repo.EXPECT().UpdateAppliedJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	files.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{
		FileURLs: &[]string{"https://cdn/post-files/u/a.pdf", "/backups/other.dump"},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAppliedJobService_Update_KeepsContentsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(models.AppliedJob{JobID: "id"}, nil)
	repo.EXPECT().UpdateAppliedJob(gomock.Any(), testAuthorID, "id", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, update models.AppliedJobUpdate) (models.AppliedJob, error) {
			require.NotNil(t, update.Contents)
			assert.Equal(t, "\tindented\n", *update.Contents)
			return models.AppliedJob{JobID: "id", Contents: *update.Contents}, nil
		},
	)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{Contents: ptr("\tindented\n")})
	require.NoError(t, err)
}

func TestAppliedJobService_Update_DuplicateStageIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	existing := models.AppliedJob{
		JobID:  "id",
		Stages: []models.Stage{{StageID: "s1", Order: 1, Name: "서류", Status: models.StageStatusPass}},
	}
	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(existing, nil)
	repo.EXPECT().UpdateAppliedJob(gomock.Any(), testAuthorID, "id", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, update models.AppliedJobUpdate) (models.AppliedJob, error) {
			require.NotNil(t, update.Stages)
			stages := *update.Stages
			require.Len(t, stages, 2)
			assert.Equal(t, "s1", stages[0].StageID)
			assert.NotEqual(t, "s1", stages[1].StageID, "repeated id is regenerated")
			assert.NotEmpty(t, stages[1].StageID)
			return existing, nil
		},
	)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{
		Stages: &[]models.StageInput{
			{StageID: "s1", Order: 1, Name: "서류"},
			{StageID: "s1", Order: 2, Name: "면접"},
		},
	})
	require.NoError(t, err)
}

func TestAppliedJobService_Update_RejectsBlankCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(models.AppliedJob{JobID: "id"}, nil)
	repo.EXPECT().UpdateAppliedJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAppliedJob(context.Background(), testAuthorID, "id", models.UpdateAppliedJobRequest{CompanyName: ptr("   ")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ── UpdateStageStatus ────────────────────────────────────────────────────────

func TestAppliedJobService_UpdateStageStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().UpdateStageStatus(gomock.Any(), testAuthorID, "job", "stage", models.StageStatusPass).
		Return(models.AppliedJob{JobID: "job"}, nil)

	job, err := svc.UpdateStageStatus(context.Background(), testAuthorID, "job", "stage", models.StageStatusUpdateRequest{Status: models.StageStatusPass})
	require.NoError(t, err)
	assert.Equal(t, "job", job.JobID)
}

func TestAppliedJobService_UpdateStageStatus_InvalidStatusNoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)
	repo.EXPECT().UpdateStageStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateStageStatus(context.Background(), testAuthorID, "job", "stage", models.StageStatusUpdateRequest{Status: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAppliedJobService_UpdateStageStatus_UnknownStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().UpdateStageStatus(gomock.Any(), testAuthorID, "job", "nope", models.StageStatusNonPass).
		Return(models.AppliedJob{}, store.ErrStageNotFound)

	_, err := svc.UpdateStageStatus(context.Background(), testAuthorID, "job", "nope", models.StageStatusUpdateRequest{Status: models.StageStatusNonPass})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── DeleteAppliedJob ─────────────────────────────────────────────────────────

func TestAppliedJobService_Delete_BlobFailureStillDeletesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	urls := []string{"https://cdn/1", "https://cdn/2", "https://cdn/3"}

	gomock.InOrder(
		repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(models.AppliedJob{JobID: "id", FileURLs: urls}, nil),
		files.EXPECT().Delete(gomock.Any(), urls[0]).Return(nil),
		files.EXPECT().Delete(gomock.Any(), urls[1]).Return(ErrInternal),
		files.EXPECT().Delete(gomock.Any(), urls[2]).Return(nil),
		repo.EXPECT().DeleteAppliedJob(gomock.Any(), testAuthorID, "id").Return(nil),
	)

	require.NoError(t, svc.DeleteAppliedJob(context.Background(), testAuthorID, "id"))
}

func TestAppliedJobService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, files := newTestAppliedJobSvc(ctrl)

	repo.EXPECT().GetAppliedJob(gomock.Any(), testAuthorID, "id").Return(models.AppliedJob{}, store.ErrAppliedJobNotFound)
	files.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().DeleteAppliedJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.DeleteAppliedJob(context.Background(), testAuthorID, "id"), ErrNotFound)
}

func TestRemovedURLs(t *testing.T) {
	assert.Equal(t, []string{"a"}, removedURLs([]string{"a", "b"}, []string{"b", "c"}))
	assert.Nil(t, removedURLs([]string{"a"}, []string{"a"}))
	assert.Nil(t, removedURLs(nil, []string{"a"}))
}
