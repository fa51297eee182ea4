// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.App.IdentityProvider {
	case IdentityPassword:
	case IdentityFirebase:
		if cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: firebase identity requires a project id", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown identity provider %q", ErrInvalidAppConfigs, cfg.App.IdentityProvider)
	}

	switch cfg.Storage.Backend {
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres backend requires a DSN", ErrInvalidStorageConfigs)
		}
	case BackendFirestore:
		if cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: firestore backend requires a project id", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
