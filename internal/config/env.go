// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the client configuration layer from the process
// environment. Only variables that are set end up non-zero, so the result
// can be merged over defaults without clobbering them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error reading client env configs: %w", err)
	}

	return &cfg, nil
}
