// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package validators

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/models"
	"github.com/xeipuuv/gojsonschema"
)

// Field name constants restrict validation of [models.Credentials] to a
// subset of its fields.
const (
	// FieldUsername targets the account name (2-30 characters after trimming).
	FieldUsername = "username"

	// FieldPassword targets the plain-text password (non-empty).
	FieldPassword = "password"
)

const rootField = "(root)"

//go:embed schemas/*.json
var schemaFiles embed.FS

const (
	schemaCredentials      = "schemas/credentials.json"
	schemaCreateAppliedJob = "schemas/create_applied_job.json"
	schemaUpdateAppliedJob = "schemas/update_applied_job.json"
	schemaStageStatus      = "schemas/stage_status.json"
)

// SchemaValidator implements [Validator] with one compiled JSON schema per
// request type:
//   - models.Credentials
//   - models.CreateAppliedJobRequest
//   - models.UpdateAppliedJobRequest
//   - models.StageStatusUpdateRequest
//
// Both value and pointer forms are accepted. Compiled schemas are
// read-only, so a SchemaValidator is safe for concurrent use.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewSchemaValidator compiles the embedded schemas.
func NewSchemaValidator() (*SchemaValidator, error) {
	v := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema, 4)}

	for _, name := range []string{schemaCredentials, schemaCreateAppliedJob, schemaUpdateAppliedJob, schemaStageStatus} {
		data, err := schemaFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("error reading schema %s: %w", name, err)
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("error compiling schema %s: %w", name, err)
		}
		v.schemas[name] = schema
	}

	return v, nil
}

// Validate dispatches obj to the schema of its type. Optional fields limit
// the reported violations to the named top-level properties.
func (v *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	case models.CreateAppliedJobRequest:
		return v.validate(ctx, schemaCreateAppliedJob, value, fields...)
	case *models.CreateAppliedJobRequest:
		return v.validate(ctx, schemaCreateAppliedJob, *value, fields...)
	case models.UpdateAppliedJobRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateAppliedJobRequest:
		return v.validateUpdate(ctx, *value, fields...)
	case models.StageStatusUpdateRequest:
		return v.validate(ctx, schemaStageStatus, value, fields...)
	case *models.StageStatusUpdateRequest:
		return v.validate(ctx, schemaStageStatus, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SchemaValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	for _, f := range fields {
		if f != FieldUsername && f != FieldPassword {
			return ErrUnknownField
		}
	}

	// the length rule applies to the trimmed name
	credentials.Username = strings.TrimSpace(credentials.Username)
	return v.validate(ctx, schemaCredentials, credentials, fields...)
}

func (v *SchemaValidator) validateUpdate(ctx context.Context, request models.UpdateAppliedJobRequest, fields ...string) error {
	if request.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNoFieldsToUpdate)
	}
	return v.validate(ctx, schemaUpdateAppliedJob, request, fields...)
}

func (v *SchemaValidator) validate(ctx context.Context, schemaName string, obj any, fields ...string) error {
	log := logger.FromContext(ctx)

	result, err := v.schemas[schemaName].Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		log.Err(err).Str("func", "SchemaValidator.validate").Str("schema", schemaName).Msg("failed to run schema validation")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		if len(fields) > 0 && !slices.Contains(fields, topLevelField(resultErr)) {
			continue
		}
		messages = append(messages, resultErr.String())
	}
	if len(messages) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

// topLevelField returns the first path segment of the violated property.
// Root-level "required" errors carry the property name in their details.
func topLevelField(resultErr gojsonschema.ResultError) string {
	field := resultErr.Field()
	if field == rootField {
		if property, ok := resultErr.Details()["property"].(string); ok {
			return property
		}
		return rootField
	}

	head, _, _ := strings.Cut(field, ".")
	return head
}
