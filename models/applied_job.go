// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Progress is the overall lifecycle state of an application.
type Progress string

const (
	ProgressPending    Progress = "pending"
	ProgressInProgress Progress = "in progress"
	ProgressCompleted  Progress = "completed"
)

// IsValid reports whether p is one of the known progress values.
func (p Progress) IsValid() bool {
	switch p {
	case ProgressPending, ProgressInProgress, ProgressCompleted:
		return true
	}
	return false
}

// StageStatus is the outcome of a single hiring stage.
type StageStatus string

const (
	StageStatusPending StageStatus = "pending"
	StageStatusPass    StageStatus = "pass"
	StageStatusNonPass StageStatus = "nonpass"
)

// IsValid reports whether s is one of the known stage statuses.
func (s StageStatus) IsValid() bool {
	switch s {
	case StageStatusPending, StageStatusPass, StageStatusNonPass:
		return true
	}
	return false
}

// Stage is one step of a hiring pipeline embedded into an [AppliedJob].
type Stage struct {
	StageID string      `json:"_id"`
	Order   int         `json:"order"`
	Name    string      `json:"name"`
	Status  StageStatus `json:"status"`
}

// AppliedJob is a single job application owned by exactly one user.
type AppliedJob struct {
	// JobID is the store-assigned identifier (UUID).
	JobID string `json:"_id"`

	// Number is the per-author sequence number, kept for list ordering in the UI.
	Number int64 `json:"number"`

	CompanyName string `json:"companyName"`
	Position    string `json:"position"`
	AppliedDate *Date  `json:"appliedDate,omitempty"`

	// Stages are ordered by Stage.Order.
	Stages []Stage `json:"stages"`

	// Contents is a serialized rich-text document produced by the editor.
	Contents string `json:"contents"`

	Progress Progress `json:"progress"`

	// FileURLs are public URLs of attached blobs.
	FileURLs []string `json:"fileUrl"`

	// AuthorID is the owning user.
	AuthorID int64 `json:"author"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllStagesPassed reports whether the job has at least one stage and every
// stage has status pass.
func (j AppliedJob) AllStagesPassed() bool {
	if len(j.Stages) == 0 {
		return false
	}
	for _, stage := range j.Stages {
		if stage.Status != StageStatusPass {
			return false
		}
	}
	return true
}

// dateLayout is the date-only layout sent by date pickers.
const dateLayout = "2006-01-02"

// Date is a calendar date that accepts both "2006-01-02" and RFC 3339 input.
type Date struct {
	time.Time
}

// NewDate wraps t into a *Date.
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// AppliedJobUpdate is a resolved partial update handed to the store. Nil
// fields are left untouched; a non-nil Stages replaces the whole stage list.
type AppliedJobUpdate struct {
	CompanyName *string
	Position    *string
	AppliedDate *Date
	Stages      *[]Stage
	Contents    *string
	Progress    *Progress
	FileURLs    *[]string
}
