package tui

import "github.com/MKhiriev/go-agreement-keeper/models"

type listLoadedMsg struct {
	agreements []models.Agreement
	packets    []models.SignaturePacket
	err        error
}

type detailLoadedMsg struct {
	agreement models.Agreement
	packets   []models.SignaturePacket
	err       error
}

type syncDoneMsg struct {
	err error
}

type documentSavedMsg struct {
	path string
	err  error
}

type signedMsg struct {
	packet  models.SignaturePacket
	receipt models.Receipt
	err     error
}

type copiedMsg struct {
	value string
	err   error
}
