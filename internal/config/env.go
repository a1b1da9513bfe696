// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags on [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, environ(os.Environ()))
}

// parseEnvFrom is parseEnv over an explicit variable set.
func parseEnvFrom(cfg any, vars map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

// environ turns KEY=VALUE pairs into a map. Values are trimmed so a stray
// space in a shell export does not end up inside an address or a key.
func environ(pairs []string) map[string]string {
	vars := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = strings.TrimSpace(v)
	}
	return vars
}
