// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package models

// MessageResponse is the generic JSON body for errors and acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginFailureResponse is returned on a wrong password while the account
// is still active.
type LoginFailureResponse struct {
	Message           string `json:"message"`
	RemainingAttempts int    `json:"remainingAttempts"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	User User `json:"user"`
}

// VerifyResponse is the body of POST /api/auth/verify-token. It is always
// sent with 200 OK.
type VerifyResponse struct {
	IsValid bool         `json:"isValid"`
	User    *SessionUser `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Pagination describes the position of a page in a list result.
type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes page metadata for total records.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// AppliedJobPage is one page of a list query.
type AppliedJobPage struct {
	Data       []AppliedJob `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// Statistics holds per-category attempt counts and pass rates in percent.
type Statistics struct {
	TotalApplications int     `json:"totalApplications"`
	TotalPassRate     float64 `json:"totalPassRate"`

	TotalDocumentApplications int     `json:"totalDocumentApplications"`
	DocumentPassRate          float64 `json:"documentPassRate"`

	TotalCodingTestAttempts int     `json:"totalCodingTestAttempts"`
	CodingTestPassRate      float64 `json:"codingTestPassRate"`

	TotalAssignmentAttempts int     `json:"totalAssignmentAttempts"`
	AssignmentPassRate      float64 `json:"assignmentPassRate"`

	TotalInterviewAttempts int     `json:"totalInterviewAttempts"`
	InterviewPassRate      float64 `json:"interviewPassRate"`
}

// FileUploadResponse is the body returned by POST /api/upload/file.
type FileUploadResponse struct {
	FileURL string `json:"fileUrl"`
}
