// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
)

// localBlobStorage keeps attachments in a directory that the HTTP server
// exposes under /files.
type localBlobStorage struct {
	dir       string
	baseURL   *url.URL
	keyPrefix string
	logger    *logger.Logger
}

// NewLocalBlobStorage creates cfg.LocalDir when missing. URLs are relative
// to the server unless cfg.PublicBaseURL is set.
func NewLocalBlobStorage(cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	return newLocalBlobStorage(cfg, log)
}

func newLocalBlobStorage(cfg config.Blob, log *logger.Logger) (*localBlobStorage, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	rawBase := cfg.PublicBaseURL
	if rawBase == "" {
		rawBase = localFilesRoute
	}
	baseURL, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("error parsing blob base url: %w", err)
	}

	return &localBlobStorage{dir: cfg.LocalDir, baseURL: baseURL, keyPrefix: cfg.KeyPrefix, logger: log}, nil
}

// Dir returns the directory served under /files.
func (s *localBlobStorage) Dir() string {
	return s.dir
}

func (s *localBlobStorage) Put(ctx context.Context, object BlobObject) (string, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(object.Key)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}

	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "localBlobStorage.Put").Str("key", object.Key).Msg("failed to create file")
		return "", fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}
	defer file.Close()

	if _, err = io.Copy(file, object.Body); err != nil {
		log.Err(err).Str("func", "localBlobStorage.Put").Str("key", object.Key).Msg("failed to write file")
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}

	return objectURL(s.baseURL, object.Key), nil
}

func (s *localBlobStorage) Delete(ctx context.Context, rawURL string) error {
	key, err := s.Key(rawURL)
	if err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrBlobNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "localBlobStorage.Delete").Str("key", key).Msg("failed to remove file")
		return fmt.Errorf("%w: %w", ErrBlobOperation, err)
	}

	return nil
}

func (s *localBlobStorage) Key(rawURL string) (string, error) {
	return keyFromURL(s.baseURL, s.keyPrefix, rawURL)
}

// path resolves key inside the storage directory, rejecting traversal.
func (s *localBlobStorage) path(key string) (string, error) {
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: key %q escapes the blob directory", ErrInvalidBlobURL, key)
	}
	return filepath.Join(s.dir, rel), nil
}
