// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the client runtime: wallet signer, ledger and
// blob adapters, the local cache, client services and the terminal browser.
//
// The CLI commands in cmd/client drive the services exposed by [App]; the
// browse command hands control to [App.Run].
package client
