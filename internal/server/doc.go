// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package server runs the HTTP API and the background workers.
//
// It owns the process lifecycle: startup, OS signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
