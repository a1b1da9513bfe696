package tui

import (
	"os"

	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

type saveTarget struct {
	agreement models.Agreement
	packet    *models.SignaturePacket
}

func (m model) cmdLoadList() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		agreements, err := sync.LocalAgreements(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		packets, err := sync.LocalSignatures(ctx)
		return listLoadedMsg{agreements: agreements, packets: packets, err: err}
	}
}

func (m model) cmdLoadDetail(owner string, index uint64) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		agreement, err := sync.LocalAgreement(ctx, owner, index)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		packets, err := sync.LocalAgreementSignatures(ctx, owner, index)
		return detailLoadedMsg{agreement: agreement, packets: packets, err: err}
	}
}

func (m model) cmdSync() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.FullSync(ctx)}
	}
}

func (m model) cmdSaveDocument(target saveTarget, path string) tea.Cmd {
	ctx, protocol := m.ctx, m.protocol
	return func() tea.Msg {
		var (
			data []byte
			err  error
		)
		if target.packet != nil {
			data, err = protocol.RetrievePacketDocument(ctx, *target.packet)
		} else {
			data, err = protocol.RetrieveAgreementDocument(ctx, target.agreement.Owner, target.agreement.Index)
		}
		if err != nil {
			return documentSavedMsg{path: path, err: err}
		}

		return documentSavedMsg{path: path, err: os.WriteFile(path, data, 0o600)}
	}
}

func (m model) cmdSign(owner string, index uint64, slot, path string) tea.Cmd {
	ctx, protocol := m.ctx, m.protocol
	return func() tea.Msg {
		document, err := os.ReadFile(path)
		if err != nil {
			return signedMsg{err: err}
		}

		packet, receipt, err := protocol.Sign(ctx, models.SignAgreementRequest{
			Owner:    owner,
			Index:    index,
			Slot:     slot,
			Document: document,
		})
		return signedMsg{packet: packet, receipt: receipt, err: err}
	}
}

func cmdCopy(value string) tea.Cmd {
	return func() tea.Msg {
		if value == "" {
			return copiedMsg{err: errNothingSelected}
		}
		return copiedMsg{value: value, err: copyToClipboard(value)}
	}
}
