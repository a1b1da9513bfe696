// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("neither HTTP nor gRPC listener is configured")
	errListeningGRPC       = errors.New("cannot listen on gRPC address")
)
