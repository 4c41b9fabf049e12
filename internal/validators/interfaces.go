// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package validators checks request payloads before they reach the
// services.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - SchemaValidator: a Validator backed by embedded JSON schemas, one per
//     request type.
//
// Validation failures wrap [ErrValidation] so callers can map them to a
// single "invalid argument" outcome.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
