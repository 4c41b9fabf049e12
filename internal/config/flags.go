// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env deployment environment (production enables secure cookies)
//	-access-token-sign-key access token signing key
//	-refresh-token-sign-key refresh token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-blob-backend attachment backend (s3 or local)
//	-blob-dir directory of the local attachment backend
//	-s3-bucket S3 bucket for attachments
//	-s3-region AWS region of the bucket
//	-server-url API base URL used by the client
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var environment string
	var accessTokenSignKey, refreshTokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var blobBackend, blobDir, bucket, region string
	var serverURL string

	fs := flag.NewFlagSet("career-log", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&accessTokenSignKey, "access-token-sign-key", "", "Access token signing key")
	fs.StringVar(&refreshTokenSignKey, "refresh-token-sign-key", "", "Refresh token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&blobBackend, "blob-backend", "", "Attachment backend: s3 or local")
	fs.StringVar(&blobDir, "blob-dir", "", "Local attachment directory")
	fs.StringVar(&bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&region, "s3-region", "", "S3 region")
	fs.StringVar(&serverURL, "server-url", "", "API base URL for the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:         environment,
			AccessTokenSignKey:  accessTokenSignKey,
			RefreshTokenSignKey: refreshTokenSignKey,
			TokenIssuer:         tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Blob: Blob{
				Backend:  blobBackend,
				LocalDir: blobDir,
				Bucket:   bucket,
				Region:   region,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
