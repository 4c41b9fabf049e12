// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package tui

import (
	"fmt"
	"strings"

	"github.com/MyungJiwoo/career-log/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: career-log\n")
	fmt.Fprintf(&b, "Version:     %s\n", valueOrNA(info.BuildVersion()))
	fmt.Fprintf(&b, "Date:        %s\n", valueOrNA(info.BuildDate()))
	fmt.Fprintf(&b, "Commit:      %s", valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
