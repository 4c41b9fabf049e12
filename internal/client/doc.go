// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

// Package client implements the terminal client lifecycle.
//
// It loops between the login flow and the main screens of the career-log
// terminal UI until the user quits.
package client
