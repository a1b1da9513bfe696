// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, address string) string {
	rows := [][2]string{
		{"Application", "AgreementKeeper"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
		{"Wallet", valueOrDash(address)},
	}
	body := ""
	for i, r := range rows {
		if i > 0 {
			body += "\n"
		}
		body += fmt.Sprintf("%-12s %s", r[0]+":", r[1])
	}
	return renderPage("ABOUT", body, "esc: back")
}
