// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Environment            string   `json:"environment"`
		AccessTokenSignKey     string   `json:"access_token_sign_key"`
		RefreshTokenSignKey    string   `json:"refresh_token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		AccessTokenDuration    Duration `json:"access_token_duration"`
		RefreshTokenDuration   Duration `json:"refresh_token_duration"`
		MaxFailedLoginAttempts int      `json:"max_failed_login_attempts"`
		PasswordHashCost       int      `json:"password_hash_cost"`
		AdminUsernames         []string `json:"admin_usernames"`
		AllowedOrigins         []string `json:"allowed_origins"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string `json:"dsn"`
			ConnectRetries int    `json:"connect_retries"`
			MaxOpenConns   int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Blob struct {
			Backend         string `json:"backend"`
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			Endpoint        string `json:"endpoint"`
			PublicBaseURL   string `json:"public_base_url"`
			LocalDir        string `json:"local_dir"`
			KeyPrefix       string `json:"key_prefix"`
			MaxUploadSize   int64  `json:"max_upload_size"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		IPLookupURL    string   `json:"ip_lookup_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`

	Statistics struct {
		Keywords map[string][]string `json:"keywords"`
	} `json:"statistics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	app := jsonCfg.App
	db := jsonCfg.Storage.DB
	blob := jsonCfg.Storage.Blob

	cfg := &StructuredConfig{
		App: App{
			Environment:            app.Environment,
			AccessTokenSignKey:     app.AccessTokenSignKey,
			RefreshTokenSignKey:    app.RefreshTokenSignKey,
			TokenIssuer:            app.TokenIssuer,
			AccessTokenDuration:    time.Duration(app.AccessTokenDuration),
			RefreshTokenDuration:   time.Duration(app.RefreshTokenDuration),
			MaxFailedLoginAttempts: app.MaxFailedLoginAttempts,
			PasswordHashCost:       app.PasswordHashCost,
			AdminUsernames:         app.AdminUsernames,
			AllowedOrigins:         app.AllowedOrigins,
		},
		Storage: Storage{
			DB: DB{
				DSN:            db.DSN,
				ConnectRetries: db.ConnectRetries,
				MaxOpenConns:   db.MaxOpenConns,
			},
			Blob: Blob{
				Backend:         blob.Backend,
				Bucket:          blob.Bucket,
				Region:          blob.Region,
				AccessKeyID:     blob.AccessKeyID,
				SecretAccessKey: blob.SecretAccessKey,
				Endpoint:        blob.Endpoint,
				PublicBaseURL:   blob.PublicBaseURL,
				LocalDir:        blob.LocalDir,
				KeyPrefix:       blob.KeyPrefix,
				MaxUploadSize:   blob.MaxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			IPLookupURL:    jsonCfg.Adapter.IPLookupURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
		Statistics: Statistics{
			Keywords: jsonCfg.Statistics.Keywords,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
