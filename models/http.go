// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package models

import "io"

// StageInput is a stage as sent by the client when creating or rewriting
// a stage list. StageID is kept when it names an existing stage.
type StageInput struct {
	StageID string      `json:"_id,omitempty"`
	Order   int         `json:"order"`
	Name    string      `json:"name"`
	Status  StageStatus `json:"status,omitempty"`
}

// CreateAppliedJobRequest is the body of POST /api/appliedJob.
type CreateAppliedJobRequest struct {
	CompanyName string       `json:"companyName,omitempty"`
	Position    string       `json:"position,omitempty"`
	AppliedDate *Date        `json:"appliedDate,omitempty"`
	Stages      []StageInput `json:"stages,omitempty"`
	Contents    string       `json:"contents,omitempty"`
	Progress    Progress     `json:"progress,omitempty"`
	FileURLs    []string     `json:"fileUrl,omitempty"`
}

// UpdateAppliedJobRequest is the body of PATCH /api/appliedJob/{id}.
// Only non-nil fields are updated.
type UpdateAppliedJobRequest struct {
	CompanyName *string       `json:"companyName,omitempty"`
	Position    *string       `json:"position,omitempty"`
	AppliedDate *Date         `json:"appliedDate,omitempty"`
	Stages      *[]StageInput `json:"stages,omitempty"`
	Contents    *string       `json:"contents,omitempty"`
	Progress    *Progress     `json:"progress,omitempty"`
	FileURLs    *[]string     `json:"fileUrl,omitempty"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateAppliedJobRequest) IsEmpty() bool {
	return r.CompanyName == nil && r.Position == nil && r.AppliedDate == nil &&
		r.Stages == nil && r.Contents == nil && r.Progress == nil && r.FileURLs == nil
}

// StageStatusUpdateRequest is the body of PATCH /api/appliedJob/{jobId}/stages/{stageId}.
type StageStatusUpdateRequest struct {
	Status StageStatus `json:"status"`
}

// AppliedJobFilter describes a list query. AuthorID is always required.
type AppliedJobFilter struct {
	AuthorID int64
	Progress Progress
	Page     int
	Limit    int
}

// Offset returns the number of records to skip for the filter's page.
func (f AppliedJobFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// FileUpload is a single attachment received from a multipart form.
type FileUpload struct {
	// OriginalName is the decoded client-side file name.
	OriginalName string

	ContentType string
	Size        int64
	Body        io.Reader
}
