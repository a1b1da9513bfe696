// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is what cmd/client drives: log in, sync, browse, then close.
type Client interface {
	Run(ctx context.Context) error
	Close() error
}
