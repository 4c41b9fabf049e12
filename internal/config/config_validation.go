// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.AccessTokenSignKey == "" || app.RefreshTokenSignKey == "":
		return fmt.Errorf("%w: access and refresh token sign keys are required", ErrInvalidAppConfigs)
	case app.AccessTokenSignKey == app.RefreshTokenSignKey:
		return fmt.Errorf("%w: access and refresh token sign keys must differ", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.AccessTokenDuration <= 0 || app.RefreshTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	case app.MaxFailedLoginAttempts < 1:
		return fmt.Errorf("%w: max failed login attempts must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	blob := cfg.Storage.Blob
	switch blob.Backend {
	case BlobBackendS3:
		if blob.Bucket == "" || blob.Region == "" {
			return fmt.Errorf("%w: s3 backend requires bucket and region", ErrInvalidStorageConfigs)
		}
	case BlobBackendLocal:
		if blob.LocalDir == "" {
			return fmt.Errorf("%w: local backend requires a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob backend %q", ErrInvalidStorageConfigs, blob.Backend)
	}
	if blob.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: malformed server URL %q", ErrInvalidAdapterConfigs, cfg.Adapter.ServerURL)
	}

	return nil
}
