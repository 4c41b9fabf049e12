// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package client

import "context"

// Client defines the lifecycle of runnable client applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
