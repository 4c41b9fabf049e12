// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"math"

	"github.com/MyungJiwoo/career-log/internal/categorizer"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/models"
)

type statisticsService struct {
	appliedJobRepository store.AppliedJobRepository
	categorizer          *categorizer.Categorizer

	logger *logger.Logger
}

// NewStatisticsService returns a StatisticsService that assigns stages to
// categories with c.
func NewStatisticsService(appliedJobRepository store.AppliedJobRepository, c *categorizer.Categorizer, logger *logger.Logger) StatisticsService {
	return &statisticsService{
		appliedJobRepository: appliedJobRepository,
		categorizer:          c,
		logger:               logger,
	}
}

// Statistics counts, per category, the applications with at least one
// matching stage and those where such a stage passed. An application
// passes overall only when it has stages and all of them passed.
func (s *statisticsService) Statistics(ctx context.Context, authorID int64) (models.Statistics, error) {
	jobs, err := s.appliedJobRepository.ListAllAppliedJobs(ctx, authorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "statisticsService.Statistics").Int64("author_id", authorID).Msg("failed to load applied jobs")
		return models.Statistics{}, ErrInternal
	}

	return aggregate(jobs, s.categorizer), nil
}

type tally struct {
	attempted int
	passed    int
}

func (t tally) rate() float64 {
	return passRate(t.passed, t.attempted)
}

func aggregate(jobs []models.AppliedJob, c *categorizer.Categorizer) models.Statistics {
	var overall tally
	perCategory := make(map[categorizer.Category]*tally, len(categorizer.Categories))
	for _, category := range categorizer.Categories {
		perCategory[category] = &tally{}
	}

	for _, job := range jobs {
		overall.attempted++
		if job.AllStagesPassed() {
			overall.passed++
		}

		for _, category := range categorizer.Categories {
			attempted, passed := false, false
			for _, stage := range job.Stages {
				if !c.Matches(category, stage.Name) {
					continue
				}
				attempted = true
				if stage.Status == models.StageStatusPass {
					passed = true
				}
			}
			if attempted {
				perCategory[category].attempted++
			}
			if passed {
				perCategory[category].passed++
			}
		}
	}

	document := perCategory[categorizer.CategoryDocument]
	codingTest := perCategory[categorizer.CategoryCodingTest]
	assignment := perCategory[categorizer.CategoryAssignment]
	interview := perCategory[categorizer.CategoryInterview]

	return models.Statistics{
		TotalApplications:         overall.attempted,
		TotalPassRate:             overall.rate(),
		TotalDocumentApplications: document.attempted,
		DocumentPassRate:          document.rate(),
		TotalCodingTestAttempts:   codingTest.attempted,
		CodingTestPassRate:        codingTest.rate(),
		TotalAssignmentAttempts:   assignment.attempted,
		AssignmentPassRate:        assignment.rate(),
		TotalInterviewAttempts:    interview.attempted,
		InterviewPassRate:         interview.rate(),
	}
}

// passRate is passed/attempted in percent with one decimal, 0 when nothing
// was attempted.
func passRate(passed, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return math.Round(float64(passed)/float64(attempted)*1000) / 10
}
