// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJobID   = "0190a6f4-7d2c-7c3e-9a55-1f2e3d4c5b6a"
	testStageID = "0190a6f4-7d2c-7c3e-9a55-1f2e3d4c5b6b"
)

func newTestAppliedJobRepo(t *testing.T) (*appliedJobRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &appliedJobRepository{DB: &DB{DB: db, logger: l}, logger: l}, mock
}

func jobRows() *sqlmock.Rows {
	return sqlmock.NewRows(appliedJobColumns)
}

func addJobRow(rows *sqlmock.Rows, jobID string, authorID int64, number int64, urls string) *sqlmock.Rows {
	now := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	return rows.AddRow(jobID, authorID, number, "Acme", "Intern", nil, "{}", "in progress", []byte(urls), now, now)
}

func stageRows() *sqlmock.Rows {
	return sqlmock.NewRows(stageColumns)
}

func TestCreateAppliedJob_Success(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	job := models.AppliedJob{
		JobID:       testJobID,
		AuthorID:    7,
		CompanyName: "Acme",
		Position:    "Intern",
		Progress:    models.ProgressInProgress,
		Stages: []models.Stage{
			{StageID: testStageID, Order: 1, Name: "서류", Status: models.StageStatusPass},
		},
	}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SET job_counter = job_counter + 1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"job_counter"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO applied_jobs").
		WithArgs(testJobID, int64(7), int64(3), "Acme", "Intern", nil, "", "in progress", "[]").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO stages").
		WithArgs(testStageID, testJobID, 1, "서류", "pass").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateAppliedJob(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, int64(3), created.Number)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, []string{}, created.FileURLs)
	assert.Len(t, created.Stages, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppliedJob_CheckViolationRollsBack(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("job_counter").
		WillReturnRows(sqlmock.NewRows([]string{"job_counter"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO applied_jobs").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
	mock.ExpectExec("INSERT INTO stages").
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.CreateAppliedJob(context.Background(), models.AppliedJob{
		JobID:    testJobID,
		AuthorID: 1,
		Stages:   []models.Stage{{StageID: testStageID, Order: 0, Name: "x"}},
	})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppliedJob_UnknownAuthor(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("job_counter").WillReturnRows(sqlmock.NewRows([]string{"job_counter"}))
	mock.ExpectRollback()

	_, err := repo.CreateAppliedJob(context.Background(), models.AppliedJob{AuthorID: 99})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestListAppliedJobs_LoadsStagesPerJob(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)
	otherJobID := "0190a6f4-7d2c-7c3e-9a55-000000000001"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM applied_jobs")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := addJobRow(jobRows(), testJobID, 7, 2, `["u1"]`)
	rows = addJobRow(rows, otherJobID, 7, 1, `[]`)
	mock.ExpectQuery("FROM applied_jobs WHERE author_id = \\$1 ORDER BY").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	mock.ExpectQuery("FROM stages").
		WithArgs(testJobID, otherJobID).
		WillReturnRows(stageRows().
			AddRow(testStageID, testJobID, 1, "서류", "pass").
			AddRow("s2", testJobID, 2, "면접", "pending"))

	jobs, total, err := repo.ListAppliedJobs(context.Background(), models.AppliedJobFilter{AuthorID: 7, Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, jobs, 2)
	assert.Equal(t, []string{"u1"}, jobs[0].FileURLs)
	assert.Len(t, jobs[0].Stages, 2)
	assert.Equal(t, models.StageStatusPass, jobs[0].Stages[0].Status)
	assert.Equal(t, []models.Stage{}, jobs[1].Stages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppliedJobs_CountError(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectQuery("COUNT").WillReturnError(errors.New("boom"))

	_, _, err := repo.ListAppliedJobs(context.Background(), models.AppliedJobFilter{AuthorID: 7, Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListAllAppliedJobs_Empty(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectQuery("FROM applied_jobs").WillReturnRows(jobRows())

	jobs, err := repo.ListAllAppliedJobs(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	// no stage query for an empty page
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppliedJob_NotFound(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectQuery("FROM applied_jobs").
		WithArgs(int64(7), testJobID).
		WillReturnRows(jobRows())

	_, err := repo.GetAppliedJob(context.Background(), 7, testJobID)
	assert.ErrorIs(t, err, ErrAppliedJobNotFound)
}

func TestGetAppliedJob_MalformedID(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectQuery("FROM applied_jobs").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetAppliedJob(context.Background(), 7, "not-a-uuid")
	assert.ErrorIs(t, err, ErrAppliedJobNotFound)
}

func TestUpdateAppliedJob_ReplacesStages(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	position := "Backend"
	stages := []models.Stage{{StageID: "s9", Order: 1, Name: "코딩 테스트", Status: models.StageStatusPending}}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applied_jobs SET updated_at = NOW\\(\\), position = \\$1").
		WithArgs("Backend", int64(7), testJobID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM stages").WithArgs(testJobID).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO stages").
		WithArgs("s9", testJobID, 1, "코딩 테스트", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM applied_jobs").
		WillReturnRows(addJobRow(jobRows(), testJobID, 7, 1, `[]`))
	mock.ExpectQuery("FROM stages").
		WillReturnRows(stageRows().AddRow("s9", testJobID, 1, "코딩 테스트", "pending"))
	mock.ExpectCommit()

	job, err := repo.UpdateAppliedJob(context.Background(), 7, testJobID, models.AppliedJobUpdate{
		Position: &position,
		Stages:   &stages,
	})
	require.NoError(t, err)
	assert.Equal(t, "s9", job.Stages[0].StageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppliedJob_DuplicateStageIDRollsBack(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	stages := []models.Stage{
		{StageID: "s1", Order: 1, Name: "서류", Status: models.StageStatusPass},
		{StageID: "s1", Order: 2, Name: "면접", Status: models.StageStatusPending},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applied_jobs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM stages").WithArgs(testJobID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO stages").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.UpdateAppliedJob(context.Background(), 7, testJobID, models.AppliedJobUpdate{Stages: &stages})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppliedJob_NotOwned(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE applied_jobs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateAppliedJob(context.Background(), 7, testJobID, models.AppliedJobUpdate{})
	assert.ErrorIs(t, err, ErrAppliedJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStageStatus(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE stages s")).
		WithArgs("nonpass", testStageID, testJobID, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM applied_jobs").
		WillReturnRows(addJobRow(jobRows(), testJobID, 7, 1, `[]`))
	mock.ExpectQuery("FROM stages").
		WillReturnRows(stageRows().AddRow(testStageID, testJobID, 1, "서류", "nonpass"))

	job, err := repo.UpdateStageStatus(context.Background(), 7, testJobID, testStageID, models.StageStatusNonPass)
	require.NoError(t, err)
	assert.Equal(t, models.StageStatusNonPass, job.Stages[0].Status)
}

func TestUpdateStageStatus_NoMatch(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectExec("UPDATE stages").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStageStatus(context.Background(), 7, testJobID, testStageID, models.StageStatusPass)
	assert.ErrorIs(t, err, ErrStageNotFound)
}

func TestDeleteAppliedJob(t *testing.T) {
	repo, mock := newTestAppliedJobRepo(t)

	mock.ExpectExec("DELETE FROM applied_jobs").
		WithArgs(testJobID, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM applied_jobs").
		WithArgs(testJobID, int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteAppliedJob(context.Background(), 7, testJobID))
	assert.ErrorIs(t, repo.DeleteAppliedJob(context.Background(), 8, testJobID), ErrAppliedJobNotFound)
}

func TestNullableDate(t *testing.T) {
	assert.Equal(t, sql.NullTime{}, nullableDate(nil))

	d := models.NewDate(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, sql.NullTime{Time: d.Time, Valid: true}, nullableDate(d))
}
