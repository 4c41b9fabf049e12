// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/internal/utils"
	"github.com/MyungJiwoo/career-log/models"
)

const defaultContentType = "application/octet-stream"

type fileService struct {
	blobStorage store.BlobStorage
	keyPrefix   string
	maxSize     int64
	uuid        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewFileService returns a FileService that stores attachments under
// cfg.KeyPrefix.
func NewFileService(blobStorage store.BlobStorage, cfg config.Blob, logger *logger.Logger) FileService {
	return &fileService{
		blobStorage: blobStorage,
		keyPrefix:   cfg.KeyPrefix,
		maxSize:     cfg.MaxUploadSize,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Upload stores file under <prefix><uuid>/<base name>. Only the last path
// element of OriginalName is kept.
func (s *fileService) Upload(ctx context.Context, file models.FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	name := baseName(file.OriginalName)
	if name == "" {
		return "", fmt.Errorf("%w: file name is required", ErrInvalidArgument)
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidArgument, s.maxSize)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	fileURL, err := s.blobStorage.Put(ctx, store.BlobObject{
		Key:                s.keyPrefix + s.uuid.Generate() + "/" + name,
		Body:               file.Body,
		Size:               file.Size,
		ContentType:        contentType,
		ContentDisposition: ContentDisposition(name),
	})
	if err != nil {
		log.Err(err).Str("func", "fileService.Upload").Str("name", name).Msg("failed to store attachment")
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return fileURL, nil
}

// Delete removes the blob behind fileURL.
func (s *fileService) Delete(ctx context.Context, fileURL string) error {
	err := s.blobStorage.Delete(ctx, fileURL)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrInvalidBlobURL):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	case errors.Is(err, store.ErrBlobNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

func (s *fileService) Validate(fileURL string) error {
	if _, err := s.blobStorage.Key(fileURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// ContentDisposition renders an inline disposition with an RFC 5987
// encoded file name.
func ContentDisposition(name string) string {
	// QueryEscape leaves only unreserved bytes; its "+" always stands for a space
	return "inline; filename*=UTF-8''" + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// baseName strips directories written with either separator.
func baseName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}

	base := path.Base(name)
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}

// deleteFiles removes every URL best-effort; failures are only logged.
func deleteFiles(ctx context.Context, files FileService, urls []string) {
	log := logger.FromContext(ctx)

	for _, fileURL := range urls {
		if err := files.Delete(ctx, fileURL); err != nil {
			log.Warn().Err(err).Str("file_url", fileURL).Msg("failed to delete attachment")
		}
	}
}
