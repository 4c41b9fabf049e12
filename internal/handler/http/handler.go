// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package http

import (
	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/service"
)

type Handler struct {
	services *service.Services

	cookies        cookieSettings
	allowedOrigins []string

	// filesDir is served under /files/ when the local blob backend is used.
	filesDir      string
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		cookies:        newCookieSettings(cfg.App),
		allowedOrigins: cfg.App.AllowedOrigins,
		maxUploadSize:  cfg.Storage.Blob.MaxUploadSize,
		logger:         logger,
	}
	if cfg.Storage.Blob.Backend == config.BlobBackendLocal {
		h.filesDir = cfg.Storage.Blob.LocalDir
	}

	return h
}
