// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MyungJiwoo/career-log/internal/categorizer"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/mock"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stage(name string, status models.StageStatus) models.Stage {
	return models.Stage{Name: name, Status: status}
}

func TestStatisticsService_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAppliedJobRepository(ctrl)
	svc := NewStatisticsService(repo, categorizer.New(nil), logger.Nop())

	repo.EXPECT().ListAllAppliedJobs(gomock.Any(), testAuthorID).Return([]models.AppliedJob{
		{CompanyName: "Acme", Position: "Intern", Stages: []models.Stage{stage("서류", models.StageStatusPass)}},
	}, nil)

	stats, err := svc.Statistics(context.Background(), testAuthorID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalApplications)
	assert.Equal(t, 1, stats.TotalDocumentApplications)
	assert.Equal(t, 100.0, stats.DocumentPassRate)
	assert.Equal(t, 100.0, stats.TotalPassRate)
	assert.Zero(t, stats.TotalInterviewAttempts)
	assert.Zero(t, stats.InterviewPassRate)
}

func TestStatisticsService_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAppliedJobRepository(ctrl)
	svc := NewStatisticsService(repo, categorizer.New(nil), logger.Nop())

	repo.EXPECT().ListAllAppliedJobs(gomock.Any(), testAuthorID).Return(nil, errors.New("db down"))

	_, err := svc.Statistics(context.Background(), testAuthorID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestAggregate(t *testing.T) {
	c := categorizer.New(nil)

	t.Run("no jobs", func(t *testing.T) {
		assert.Equal(t, models.Statistics{}, aggregate(nil, c))
	})

	t.Run("overall needs every stage passed", func(t *testing.T) {
		jobs := []models.AppliedJob{{Stages: []models.Stage{
			stage("서류 전형", models.StageStatusPass),
			stage("1차 면접", models.StageStatusPass),
		}}}
		assert.Equal(t, 100.0, aggregate(jobs, c).TotalPassRate)

		jobs[0].Stages = append(jobs[0].Stages, stage("최종 면접", models.StageStatusPending))
		stats := aggregate(jobs, c)
		assert.Zero(t, stats.TotalPassRate)
		assert.Equal(t, 100.0, stats.InterviewPassRate, "one passed interview stage is enough for the category")
		assert.Equal(t, 1, stats.TotalInterviewAttempts, "a job counts once per category")
	})

	t.Run("mixed categories", func(t *testing.T) {
		jobs := []models.AppliedJob{
			{Stages: []models.Stage{stage("자기소개서", models.StageStatusPass), stage("코딩테스트", models.StageStatusNonPass)}},
			{Stages: []models.Stage{stage("자소서", models.StageStatusNonPass)}},
			{Stages: []models.Stage{stage("코테", models.StageStatusPass), stage("과제 전형", models.StageStatusPending)}},
			{},
		}

		stats := aggregate(jobs, c)
		assert.Equal(t, 4, stats.TotalApplications)
		assert.Zero(t, stats.TotalPassRate)
		assert.Equal(t, 2, stats.TotalDocumentApplications)
		assert.Equal(t, 50.0, stats.DocumentPassRate)
		assert.Equal(t, 2, stats.TotalCodingTestAttempts)
		assert.Equal(t, 50.0, stats.CodingTestPassRate)
		assert.Equal(t, 1, stats.TotalAssignmentAttempts)
		assert.Zero(t, stats.AssignmentPassRate)
	})

	t.Run("configured keywords", func(t *testing.T) {
		custom := categorizer.New(map[string][]string{"interview": {"meeting"}})
		jobs := []models.AppliedJob{{Stages: []models.Stage{stage("Team Meeting", models.StageStatusPass), stage("면접", models.StageStatusPass)}}}

		stats := aggregate(jobs, custom)
		assert.Equal(t, 1, stats.TotalInterviewAttempts)
		assert.Equal(t, 100.0, stats.InterviewPassRate)
	})
}

func TestPassRate(t *testing.T) {
	assert.Zero(t, passRate(0, 0))
	assert.Equal(t, 33.3, passRate(1, 3))
	assert.Equal(t, 66.7, passRate(2, 3))
	assert.Equal(t, 100.0, passRate(4, 4))
}
