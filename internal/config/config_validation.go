// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required before the server starts.
//
// The database connection string is the only hard requirement: without it
// the process cannot serve anything and must refuse to boot. The token sign
// key is deliberately NOT required here — authenticated routes report a
// configuration error at request time instead, and public routes keep
// working.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
