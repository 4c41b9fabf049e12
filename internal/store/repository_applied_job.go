// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/jackc/pgerrcode"
)

// appliedJobRepository is the PostgreSQL-backed implementation of
// [AppliedJobRepository]. Jobs live in "applied_jobs", their stages in
// "stages"; file URLs are a JSONB array column.
type appliedJobRepository struct {
	*DB
	logger *logger.Logger
}

// NewAppliedJobRepository constructs an [AppliedJobRepository] backed by
// the provided database connection and logger.
func NewAppliedJobRepository(db *DB, logger *logger.Logger) AppliedJobRepository {
	logger.Debug().Msg("creating applied job repository")
	return &appliedJobRepository{
		DB:     db,
		logger: logger,
	}
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateAppliedJob takes the next number from the author's counter and
// inserts the job and its stages in one transaction.
func (p *appliedJobRepository) CreateAppliedJob(ctx context.Context, job models.AppliedJob) (models.AppliedJob, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "appliedJobRepository.CreateAppliedJob").
		Int64("author_id", job.AuthorID).
		Logger()

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, nextJobNumber, job.AuthorID).Scan(&job.Number); err != nil {
		log.Err(err).Msg("failed to take next job number")
		if errors.Is(err, sql.ErrNoRows) {
			return models.AppliedJob{}, ErrNoUserWasFound
		}
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	fileURLs, err := encodeFileURLs(job.FileURLs)
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = tx.QueryRowContext(ctx, insertAppliedJob,
		job.JobID,
		job.AuthorID,
		job.Number,
		job.CompanyName,
		job.Position,
		nullableDate(job.AppliedDate),
		job.Contents,
		string(job.Progress),
		fileURLs,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		log.Err(err).Str("job_id", job.JobID).Msg("failed to insert applied job")
		return models.AppliedJob{}, classifyWriteError(err)
	}

	if err = insertStages(ctx, tx, job.JobID, job.Stages); err != nil {
		log.Err(err).Str("job_id", job.JobID).Msg("failed to insert stages")
		return models.AppliedJob{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if job.FileURLs == nil {
		job.FileURLs = []string{}
	}
	if job.Stages == nil {
		job.Stages = []models.Stage{}
	}

	return job, nil
}

// ListAppliedJobs returns a page of the author's jobs and the total count of
// jobs matching the filter.
func (p *appliedJobRepository) ListAppliedJobs(ctx context.Context, filter models.AppliedJobFilter) ([]models.AppliedJob, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountAppliedJobsQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = p.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "appliedJobRepository.ListAppliedJobs").
			Int64("author_id", filter.AuthorID).
			Msg("failed to count applied jobs")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	jobs, err := p.selectJobs(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListAllAppliedJobs returns every job owned by authorID.
func (p *appliedJobRepository) ListAllAppliedJobs(ctx context.Context, authorID int64) ([]models.AppliedJob, error) {
	return p.selectJobs(ctx, models.AppliedJobFilter{AuthorID: authorID})
}

// GetAppliedJob returns the job with its stages or [ErrAppliedJobNotFound].
func (p *appliedJobRepository) GetAppliedJob(ctx context.Context, authorID int64, jobID string) (models.AppliedJob, error) {
	return p.getAppliedJob(ctx, p.DB, authorID, jobID)
}

// UpdateAppliedJob applies the non-nil fields of update and, when
// update.Stages is set, replaces the stage list. Everything runs in one
// transaction and the re-read job is returned.
func (p *appliedJobRepository) UpdateAppliedJob(ctx context.Context, authorID int64, jobID string, update models.AppliedJobUpdate) (models.AppliedJob, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "appliedJobRepository.UpdateAppliedJob").
		Int64("author_id", authorID).
		Str("job_id", jobID).
		Logger()

	query, args, err := buildUpdateAppliedJobQuery(authorID, jobID, update)
	if err != nil {
		log.Err(err).Msg("failed to build update query")
		return models.AppliedJob{}, err
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to update applied job")
		return models.AppliedJob{}, classifyWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.AppliedJob{}, ErrAppliedJobNotFound
	}

	if update.Stages != nil {
		if _, err = tx.ExecContext(ctx, deleteStagesOfJob, jobID); err != nil {
			log.Err(err).Msg("failed to delete old stages")
			return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = insertStages(ctx, tx, jobID, *update.Stages); err != nil {
			log.Err(err).Msg("failed to insert new stages")
			return models.AppliedJob{}, err
		}
	}

	job, err := p.getAppliedJob(ctx, tx, authorID, jobID)
	if err != nil {
		return models.AppliedJob{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return job, nil
}

// UpdateStageStatus sets the status of one stage of an owned job.
// Returns [ErrStageNotFound] when the stage, the job or the ownership does
// not match.
func (p *appliedJobRepository) UpdateStageStatus(ctx context.Context, authorID int64, jobID, stageID string, status models.StageStatus) (models.AppliedJob, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, updateStageStatus, string(status), stageID, jobID, authorID)
	if err != nil {
		log.Err(err).
			Str("func", "appliedJobRepository.UpdateStageStatus").
			Str("job_id", jobID).
			Str("stage_id", stageID).
			Msg("failed to update stage status")
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.AppliedJob{}, ErrStageNotFound
		}
		return models.AppliedJob{}, classifyWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.AppliedJob{}, ErrStageNotFound
	}

	return p.getAppliedJob(ctx, p.DB, authorID, jobID)
}

// DeleteAppliedJob removes the job; its stages cascade.
func (p *appliedJobRepository) DeleteAppliedJob(ctx context.Context, authorID int64, jobID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteAppliedJob, jobID, authorID)
	if err != nil {
		log.Err(err).
			Str("func", "appliedJobRepository.DeleteAppliedJob").
			Str("job_id", jobID).
			Msg("failed to delete applied job")
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrAppliedJobNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAppliedJobNotFound
	}

	return nil
}

func (p *appliedJobRepository) getAppliedJob(ctx context.Context, q querier, authorID int64, jobID string) (models.AppliedJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAppliedJobQuery(authorID, jobID)
	if err != nil {
		return models.AppliedJob{}, err
	}

	job, err := scanAppliedJob(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.AppliedJob{}, ErrAppliedJobNotFound
		}
		log.Err(err).
			Str("func", "appliedJobRepository.getAppliedJob").
			Str("job_id", jobID).
			Msg("failed to scan applied job")
		return models.AppliedJob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	jobs := []models.AppliedJob{job}
	if err = loadStages(ctx, q, jobs); err != nil {
		return models.AppliedJob{}, err
	}

	return jobs[0], nil
}

func (p *appliedJobRepository) selectJobs(ctx context.Context, filter models.AppliedJobFilter) ([]models.AppliedJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAppliedJobsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "appliedJobRepository.selectJobs").
			Int64("author_id", filter.AuthorID).
			Msg("failed to execute query for listing applied jobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	jobs := make([]models.AppliedJob, 0, max(filter.Limit, 10))
	for rows.Next() {
		job, scanErr := scanAppliedJob(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "appliedJobRepository.selectJobs").
				Int64("author_id", filter.AuthorID).
				Msg("failed to scan applied job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		jobs = append(jobs, job)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "appliedJobRepository.selectJobs").
			Int64("author_id", filter.AuthorID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err = loadStages(ctx, p.DB, jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

func scanAppliedJob(row rowScanner) (models.AppliedJob, error) {
	var (
		job         models.AppliedJob
		appliedDate sql.NullTime
		progress    string
		fileURLs    []byte
	)

	err := row.Scan(
		&job.JobID,
		&job.AuthorID,
		&job.Number,
		&job.CompanyName,
		&job.Position,
		&appliedDate,
		&job.Contents,
		&progress,
		&fileURLs,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return models.AppliedJob{}, err
	}

	if appliedDate.Valid {
		job.AppliedDate = models.NewDate(appliedDate.Time)
	}
	job.Progress = models.Progress(progress)
	if job.FileURLs, err = decodeFileURLs(fileURLs); err != nil {
		return models.AppliedJob{}, fmt.Errorf("error decoding file_urls: %w", err)
	}
	job.Stages = []models.Stage{}

	return job, nil
}

// loadStages fills Stages of every job with one query.
func loadStages(ctx context.Context, q querier, jobs []models.AppliedJob) error {
	if len(jobs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	index := make(map[string]int, len(jobs))
	jobIDs := make([]string, 0, len(jobs))
	for i, job := range jobs {
		index[job.JobID] = i
		jobIDs = append(jobIDs, job.JobID)
	}

	query, args, err := buildSelectStagesQuery(jobIDs)
	if err != nil {
		return err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loadStages").Msg("failed to query stages")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stage  models.Stage
			jobID  string
			status string
		)
		if err = rows.Scan(&stage.StageID, &jobID, &stage.Order, &stage.Name, &status); err != nil {
			log.Err(err).Str("func", "loadStages").Msg("failed to scan stage row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stage.Status = models.StageStatus(status)

		if i, ok := index[jobID]; ok {
			jobs[i].Stages = append(jobs[i].Stages, stage)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "loadStages").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func insertStages(ctx context.Context, q querier, jobID string, stages []models.Stage) error {
	if len(stages) == 0 {
		return nil
	}

	query, args, err := buildInsertStagesQuery(jobID, stages)
	if err != nil {
		return err
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return classifyWriteError(err)
	}
	return nil
}

// classifyWriteError maps CHECK, enum and duplicate key violations to
// [ErrInvalidRecord].
func classifyWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation,
		pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func nullableDate(d *models.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}
