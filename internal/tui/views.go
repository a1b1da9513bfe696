package tui

import (
	"fmt"
	"strings"
	"time"
)

func (m model) View() string {
	switch m.screen {
	case screenDetail:
		return m.detailView()
	case screenSign:
		return m.signView()
	case screenSave:
		return m.saveView()
	case screenInfo:
		return renderBuildInfoWindow(m.info, m.address)
	default:
		return m.listView()
	}
}

func (m model) listView() string {
	var b strings.Builder

	agreementsTab := fmt.Sprintf("Agreements (%d)", len(m.agreements))
	packetsTab := fmt.Sprintf("Signatures (%d)", len(m.packets))
	if m.tab == tabAgreements {
		b.WriteString(activeTab.Render(agreementsTab) + tabStyle.Render(packetsTab))
	} else {
		b.WriteString(tabStyle.Render(agreementsTab) + activeTab.Render(packetsTab))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.tab == tabAgreements && len(m.agreements) == 0:
		b.WriteString("No agreements yet, press s to synchronize\n")
	case m.tab == tabPackets && len(m.packets) == 0:
		b.WriteString("No signatures yet, press s to synchronize\n")
	case m.tab == tabAgreements:
		for i, a := range m.agreements {
			line := fmt.Sprintf("%s#%d  %-24s %-9s %s",
				shortAddress(a.Owner), a.Index, fitText(a.Identifier, 24), a.Status, progress(a))
			b.WriteString(m.row(i == m.listIdx, line))
		}
	default:
		for i, p := range m.packets {
			line := fmt.Sprintf("%s#%d  packet #%d  slot %-16s %s",
				shortAddress(p.AgreementOwner), p.AgreementIndex, p.Index, fitText(p.Identifier, 16), formatTime(p.Timestamp))
			b.WriteString(m.row(i == m.listIdx, line))
		}
	}

	b.WriteString(m.footer())

	title := "AGREEMENT KEEPER  " + shortAddress(m.address)
	return renderPage(title, b.String(), "tab: switch  enter: open  c: copy CID  s: sync  i: about  q: quit")
}

func (m model) detailView() string {
	a := m.agreement
	var b strings.Builder

	fmt.Fprintf(&b, "Identifier:   %s\n", valueOrDash(a.Identifier))
	fmt.Fprintf(&b, "Owner:        %s\n", valueOrDash(a.Owner))
	fmt.Fprintf(&b, "Index:        %d\n", a.Index)
	fmt.Fprintf(&b, "Status:       %s (%s)\n", valueOrDash(string(a.Status)), progress(a))
	fmt.Fprintf(&b, "Created:      %s\n", formatTime(a.CreatedAt))
	fmt.Fprintf(&b, "Document:     %s\n", valueOrDash(a.ContentIdentifier))
	fmt.Fprintf(&b, "Encrypted:    %s\n", valueOrDash(a.EncryptedContentIdentifier))
	fmt.Fprintf(&b, "Description:  %s\n", valueOrDash(a.DescriptionContentIdentifier))

	b.WriteString("\nSlots\n")
	for _, c := range a.Constraints {
		fmt.Fprintf(&b, "  %-20s %-44s %s\n", fitText(c.Identifier, 20), signerLabel(c), uses(c))
	}

	b.WriteString("\nDocuments\n")
	b.WriteString(m.row(m.detailIdx == 0, "agreement document "+fitText(a.ContentIdentifier, 40)))
	for i, p := range m.agreementPackets {
		line := fmt.Sprintf("packet #%d  slot %-16s by %s  %s",
			p.Index, fitText(p.Identifier, 16), shortAddress(p.Signer), formatTime(p.Timestamp))
		b.WriteString(m.row(m.detailIdx == i+1, line))
	}

	b.WriteString(m.footer())

	return renderPage("AGREEMENT", b.String(), "↑/↓: select  d: decrypt and save  c: copy CID  n: sign  esc: back")
}

func (m model) signView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Agreement %s#%d  %s\n\n", shortAddress(m.agreement.Owner), m.agreement.Index, m.agreement.Identifier)
	for _, input := range m.signInputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.footer())

	return renderPage("SIGN AGREEMENT", b.String(), "tab: next field  enter: sign  esc: cancel")
}

func (m model) saveView() string {
	var b strings.Builder

	what := "agreement document"
	if m.saveTarget.packet != nil {
		what = fmt.Sprintf("document of packet #%d", m.saveTarget.packet.Index)
	}
	fmt.Fprintf(&b, "Decrypt the %s and write it to disk.\n\n", what)
	b.WriteString(m.saveInput.View())
	b.WriteString("\n")
	b.WriteString(m.footer())

	return renderPage("SAVE DOCUMENT", b.String(), "enter: save  esc: cancel")
}

func (m model) row(selected bool, line string) string {
	if selected {
		return selectedStyle.Render(cursor(true)+line) + "\n"
	}
	return cursor(false) + line + "\n"
}

func (m model) footer() string {
	var b strings.Builder
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " " + m.status + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return b.String()
}

func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
