// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package validators

import (
	"context"
	"testing"

	"github.com/MyungJiwoo/career-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestValidator(t *testing.T) *SchemaValidator {
	t.Helper()
	v, err := NewSchemaValidator()
	require.NoError(t, err)
	return v
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := newTestValidator(t)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		credentials models.Credentials
		fields      []string
		wantErr     bool
	}{
		{name: "valid", credentials: models.Credentials{Username: "jiwoo", Password: "secret"}},
		{name: "korean name counts runes", credentials: models.Credentials{Username: "명지", Password: "p"}},
		{name: "too short after trim", credentials: models.Credentials{Username: " a ", Password: "p"}, wantErr: true},
		{name: "too long", credentials: models.Credentials{Username: "abcdefghijklmnopqrstuvwxyz12345", Password: "p"}, wantErr: true},
		{name: "empty password", credentials: models.Credentials{Username: "jiwoo"}, wantErr: true},
		{name: "scoped to username ignores password", credentials: models.Credentials{Username: "jiwoo"}, fields: []string{FieldUsername}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.credentials, tt.fields...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}, "email"), ErrUnknownField)
}

func TestValidate_CreateAppliedJob(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	valid := models.CreateAppliedJobRequest{
		CompanyName: "Acme",
		Position:    "Intern",
		Progress:    models.ProgressInProgress,
		Stages:      []models.StageInput{{Order: 1, Name: "서류", Status: models.StageStatusPass}},
	}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	missingCompany := valid
	missingCompany.CompanyName = ""
	assert.ErrorIs(t, v.Validate(ctx, missingCompany), ErrValidation)

	badOrder := valid
	badOrder.Stages = []models.StageInput{{Order: 0, Name: "서류"}}
	assert.ErrorIs(t, v.Validate(ctx, badOrder), ErrValidation)

	badStatus := valid
	badStatus.Stages = []models.StageInput{{Order: 1, Name: "서류", Status: "fail"}}
	assert.ErrorIs(t, v.Validate(ctx, badStatus), ErrValidation)

	badProgress := valid
	badProgress.Progress = "done"
	err := v.Validate(ctx, badProgress)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "progress")
}

func TestValidate_UpdateAppliedJob(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateAppliedJobRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdateAppliedJobRequest{Contents: ptr("")}))
	assert.NoError(t, v.Validate(ctx, models.UpdateAppliedJobRequest{FileURLs: ptr([]string{})}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateAppliedJobRequest{Position: ptr("")}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.UpdateAppliedJobRequest{
		Stages: ptr([]models.StageInput{{Order: 1}}),
	}), ErrValidation)
}

func TestValidate_StageStatus(t *testing.T) {
	v := newTestValidator(t)
	ctx := context.Background()

	for _, status := range []models.StageStatus{models.StageStatusPending, models.StageStatusPass, models.StageStatusNonPass} {
		assert.NoError(t, v.Validate(ctx, models.StageStatusUpdateRequest{Status: status}))
	}
	assert.ErrorIs(t, v.Validate(ctx, models.StageStatusUpdateRequest{Status: "passed"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.StageStatusUpdateRequest{}), ErrValidation)
}
