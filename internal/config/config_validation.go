// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// maxRetryExponent bounds RetryMaxExponent so base<<exponent cannot overflow
// for any sane base delay.
const maxRetryExponent = 20

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.RetryMaxExponent < 0 || cfg.Workers.RetryMaxExponent > maxRetryExponent {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	// the address is optional: sync may be enabled later with an explicit endpoint
	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
	}
	if cfg.Adapter.AccessToken != "" && cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.RetryBase <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.RetryMaxExponent < 0 || cfg.Workers.RetryMaxExponent > maxRetryExponent {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return ErrInvalidLogConfigs
	}

	return nil
}
