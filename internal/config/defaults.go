// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package config

import "time"

const (
	defaultTokenIssuer            = "career-log"
	defaultAccessTokenDuration    = 15 * time.Minute
	defaultRefreshTokenDuration   = 7 * 24 * time.Hour
	defaultMaxFailedLoginAttempts = 5
	defaultPasswordHashCost       = 10

	defaultConnectRetries = 3
	defaultBlobKeyPrefix  = "post-files/"
	defaultMaxUploadSize  = 100 << 20

	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	defaultServerURL      = "http://localhost:8080"
	defaultIPLookupURL    = "https://api.ipify.org?format=json"
	defaultAdapterTimeout = 5 * time.Second

	defaultSessionSweepInterval = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:            "development",
			TokenIssuer:            defaultTokenIssuer,
			AccessTokenDuration:    defaultAccessTokenDuration,
			RefreshTokenDuration:   defaultRefreshTokenDuration,
			MaxFailedLoginAttempts: defaultMaxFailedLoginAttempts,
			PasswordHashCost:       defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{ConnectRetries: defaultConnectRetries},
			Blob: Blob{
				Backend:       BlobBackendLocal,
				LocalDir:      "data/files",
				KeyPrefix:     defaultBlobKeyPrefix,
				MaxUploadSize: defaultMaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			ServerURL:      defaultServerURL,
			IPLookupURL:    defaultIPLookupURL,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{SessionSweepInterval: defaultSessionSweepInterval},
	}
}
