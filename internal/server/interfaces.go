// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the ledger process: HTTP and gRPC listeners plus background workers.
type Server interface {
	// RunServer blocks until SIGINT/SIGTERM, then drains listeners and workers.
	RunServer()
	// Shutdown stops the listeners. Safe to call more than once.
	Shutdown()
}
