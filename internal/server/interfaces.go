// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package server

// Server defines the lifecycle of the API process.
//
// [RunServer] blocks until shutdown is requested by a signal or until the
// listener fails. [Shutdown] releases the listener and waits for in-flight
// requests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
