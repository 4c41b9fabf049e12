// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package workers runs the server's periodic background jobs.
//
// Every worker is started by [Workers.Run] and stops when the context passed
// to it is cancelled.
package workers

import "context"

// Worker is a background job. Run must return promptly once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
