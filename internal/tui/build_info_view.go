// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-gambit/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-gambit\n")
	b.WriteString("Version: " + info.Version() + "\n")
	b.WriteString("Date: " + info.Date() + "\n")
	b.WriteString("Commit: " + info.Commit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
