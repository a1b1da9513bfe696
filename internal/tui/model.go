package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenSign
	screenSave
	screenInfo
)

type listTab int

const (
	tabAgreements listTab = iota
	tabPackets
)

const (
	signSlotInput = iota
	signPathInput
)

type model struct {
	ctx      context.Context
	protocol service.AgreementProtocol
	sync     service.ClientSyncService
	address  string
	info     models.AppBuildInfo

	screen     screen
	tab        listTab
	agreements []models.Agreement
	packets    []models.SignaturePacket
	listIdx    int

	agreement        models.Agreement
	agreementPackets []models.SignaturePacket
	// detailIdx 0 is the agreement document, i > 0 is agreementPackets[i-1].
	detailIdx     int
	focusedPacket *uint64

	signInputs []textinput.Model
	signFocus  int
	saveInput  textinput.Model
	saveTarget saveTarget

	loading    bool
	busy       bool
	spinner    spinner.Model
	status     string
	errMsg     string
	quitByUser bool
}

func newModel(ctx context.Context, protocol service.AgreementProtocol, sync service.ClientSyncService, address string, info models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:      ctx,
		protocol: protocol,
		sync:     sync,
		address:  address,
		info:     info,
		loading:  true,
		spinner:  s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadList())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.busy && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.agreements, m.packets = msg.agreements, msg.packets
		m.listIdx = clamp(m.listIdx, m.listLen())
		return m, nil
	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.agreement, m.agreementPackets = msg.agreement, msg.packets
		m.detailIdx = clamp(m.detailIdx, len(msg.packets)+1)
		if m.focusedPacket != nil {
			for i, p := range msg.packets {
				if p.Index == *m.focusedPacket {
					m.detailIdx = i + 1
				}
			}
			m.focusedPacket = nil
		}
		if m.screen == screenList {
			m.screen = screenDetail
		}
		return m, nil
	case syncDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if m.status == "" || m.status == statusSyncing {
			m.status = "Synchronized"
		}
		m.errMsg = ""
		m.loading = true
		return m, m.reload()
	case documentSavedMsg:
		m.busy = false
		m.screen = screenDetail
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Saved to " + msg.path
		return m, nil
	case signedMsg:
		m.screen = screenDetail
		if msg.err != nil {
			m.busy = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Signed slot %q, packet #%d in block %d", msg.packet.Identifier, msg.receipt.Index, msg.receipt.BlockNumber)
		return m, m.cmdSync()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied " + fitText(msg.value, 32)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateInputs(msg)
}

const statusSyncing = "Synchronizing..."

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenSign:
		return m.updateSignForm(msg)
	case screenSave:
		return m.updateSaveForm(msg)
	case screenInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.screen = screenList
		}
		return m, nil
	default:
		return m.updateList(msg)
	}
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.listIdx = clamp(m.listIdx-1, m.listLen())
	case key.Matches(msg, keys.down):
		m.listIdx = clamp(m.listIdx+1, m.listLen())
	case key.Matches(msg, keys.tab, keys.backtab):
		if m.tab == tabAgreements {
			m.tab = tabPackets
		} else {
			m.tab = tabAgreements
		}
		m.listIdx = 0
	case key.Matches(msg, keys.enter):
		return m.openSelected()
	case key.Matches(msg, keys.sync):
		m.busy = true
		m.status = statusSyncing
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.selectedListCID())
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
	}
	return m, nil
}

func (m model) openSelected() (tea.Model, tea.Cmd) {
	m.detailIdx = 0
	m.focusedPacket = nil
	m.status, m.errMsg = "", ""

	switch m.tab {
	case tabAgreements:
		if m.listIdx >= len(m.agreements) {
			return m, nil
		}
		a := m.agreements[m.listIdx]
		m.loading = true
		return m, m.cmdLoadDetail(a.Owner, a.Index)
	default:
		if m.listIdx >= len(m.packets) {
			return m, nil
		}
		p := m.packets[m.listIdx]
		index := p.Index
		m.focusedPacket = &index
		m.loading = true
		return m, m.cmdLoadDetail(p.AgreementOwner, p.AgreementIndex)
	}
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.status, m.errMsg = "", ""
	case key.Matches(msg, keys.up):
		m.detailIdx = clamp(m.detailIdx-1, len(m.agreementPackets)+1)
	case key.Matches(msg, keys.down):
		m.detailIdx = clamp(m.detailIdx+1, len(m.agreementPackets)+1)
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.selectedDetailCID())
	case key.Matches(msg, keys.save):
		m.openSaveForm()
		return m, textinput.Blink
	case key.Matches(msg, keys.sign):
		if m.agreement.Status == models.AgreementStatusCompleted {
			m.errMsg = "Agreement is completed, every slot is used"
			return m, nil
		}
		m.openSignForm()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *model) openSaveForm() {
	target := saveTarget{agreement: m.agreement}
	name := m.agreement.Identifier
	if m.detailIdx > 0 {
		packet := m.agreementPackets[m.detailIdx-1]
		target.packet = &packet
		name = fmt.Sprintf("%s-%d", packet.Identifier, packet.Index)
	}

	input := textinput.New()
	input.Prompt = "Save to: "
	input.Placeholder = "path/to/document"
	input.SetValue(safeFileName(name))
	input.Focus()

	m.saveInput = input
	m.saveTarget = target
	m.screen = screenSave
	m.status, m.errMsg = "", ""
}

func (m *model) openSignForm() {
	slot := textinput.New()
	slot.Prompt = "Slot: "
	slot.Placeholder = "slot identifier"
	if len(m.agreement.Constraints) == 1 {
		slot.SetValue(m.agreement.Constraints[0].Identifier)
	}
	slot.Focus()

	path := textinput.New()
	path.Prompt = "Document: "
	path.Placeholder = "path/to/signed/document"

	m.signInputs = []textinput.Model{slot, path}
	m.signFocus = signSlotInput
	m.screen = screenSign
	m.status, m.errMsg = "", ""
}

func (m model) updateSignForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDetail
		return m, nil
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		m.focusSign(m.signFocus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		m.focusSign(m.signFocus - 1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.signFocus < len(m.signInputs)-1 {
			m.focusSign(m.signFocus + 1)
			return m, nil
		}
		slot := strings.TrimSpace(m.signInputs[signSlotInput].Value())
		path := strings.TrimSpace(m.signInputs[signPathInput].Value())
		if slot == "" {
			m.errMsg = humanizeError(errEmptySlot)
			return m, nil
		}
		if path == "" {
			m.errMsg = humanizeError(errEmptyPath)
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		m.status = "Signing..."
		return m, tea.Batch(m.spinner.Tick, m.cmdSign(m.agreement.Owner, m.agreement.Index, slot, path))
	}

	var cmd tea.Cmd
	m.signInputs[m.signFocus], cmd = m.signInputs[m.signFocus].Update(msg)
	return m, cmd
}

func (m *model) focusSign(i int) {
	n := len(m.signInputs)
	m.signFocus = (i%n + n) % n
	for j := range m.signInputs {
		if j == m.signFocus {
			m.signInputs[j].Focus()
		} else {
			m.signInputs[j].Blur()
		}
	}
}

func (m model) updateSaveForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDetail
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.saveInput.Value())
		if path == "" {
			m.errMsg = humanizeError(errEmptyPath)
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		m.status = "Decrypting..."
		return m, tea.Batch(m.spinner.Tick, m.cmdSaveDocument(m.saveTarget, path))
	}

	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenSign:
		m.signInputs[m.signFocus], cmd = m.signInputs[m.signFocus].Update(msg)
	case screenSave:
		m.saveInput, cmd = m.saveInput.Update(msg)
	}
	return m, cmd
}

// reload refreshes the lists and, on the detail screen, the open agreement.
func (m model) reload() tea.Cmd {
	if m.screen == screenList || m.agreement.Owner == "" {
		return m.cmdLoadList()
	}
	return tea.Batch(m.cmdLoadList(), m.cmdLoadDetail(m.agreement.Owner, m.agreement.Index))
}

func (m model) listLen() int {
	if m.tab == tabPackets {
		return len(m.packets)
	}
	return len(m.agreements)
}

func (m model) selectedListCID() string {
	switch {
	case m.tab == tabAgreements && m.listIdx < len(m.agreements):
		return m.agreements[m.listIdx].ContentIdentifier
	case m.tab == tabPackets && m.listIdx < len(m.packets):
		return m.packets[m.listIdx].ContentIdentifier
	}
	return ""
}

func (m model) selectedDetailCID() string {
	if m.detailIdx == 0 {
		return m.agreement.ContentIdentifier
	}
	if m.detailIdx-1 < len(m.agreementPackets) {
		return m.agreementPackets[m.detailIdx-1].ContentIdentifier
	}
	return ""
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func safeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, string(filepath.Separator), "_"))
	if name == "." || name == "" {
		return "document"
	}
	return name
}
