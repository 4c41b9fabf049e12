// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package http implements the REST transport of the career-log server.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Cross-cutting concerns such as cookie authentication, request tracing,
// access logging, CORS and response compression are handled in this package
// before requests are delegated to the service layer.
package http
