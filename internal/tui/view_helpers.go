package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func uses(c models.SignatureConstraint) string {
	if c.IsUnlimited() {
		return fmt.Sprintf("%d/unlimited", c.TotalUsed)
	}
	return fmt.Sprintf("%d/%d", c.TotalUsed, c.AllowedToUse)
}

func signerLabel(c models.SignatureConstraint) string {
	if c.IsWildcard() {
		return "anyone"
	}
	return c.Signer
}

func progress(a models.Agreement) string {
	if a.TotalPacketCount == 0 {
		return fmt.Sprintf("%d signed", a.SignedPacketCount)
	}
	return fmt.Sprintf("%d/%d signed", a.SignedPacketCount, a.TotalPacketCount)
}
