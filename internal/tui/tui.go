// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("client services are not initialized")

// TUI runs the interactive agreement browser.
type TUI struct {
	protocol service.AgreementProtocol
	sync     service.ClientSyncService
	address  string
	info     models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, address string, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Protocol == nil || services.SyncService == nil {
		return nil, errNoServices
	}

	return &TUI{
		protocol: services.Protocol,
		sync:     services.SyncService,
		address:  address,
		info:     info,
		logger:   logger,
	}, nil
}

// Browse blocks until the user leaves the browser. Leaving with ctrl+c
// returns [ErrUserQuit].
func (t *TUI) Browse(ctx context.Context) error {
	root := newModel(ctx, t.protocol, t.sync, t.address, t.info)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(model); ok && result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Debug().Msg("browser closed")
	return nil
}
