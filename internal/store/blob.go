// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/logger"
)

// localFilesRoute is where the HTTP server exposes the local blob directory.
const localFilesRoute = "/files"

// NewBlobStorage builds the attachment backend selected by cfg.Backend.
func NewBlobStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	switch cfg.Backend {
	case config.BlobBackendS3:
		return NewS3BlobStorage(ctx, cfg, log)
	case config.BlobBackendLocal:
		return NewLocalBlobStorage(cfg, log)
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Backend)
	}
}

// objectURL joins base and key; url.URL escapes each path segment.
func objectURL(base *url.URL, key string) string {
	u := *base
	u.RawPath = ""
	u.Path = strings.TrimRight(base.Path, "/") + "/" + key
	return u.String()
}

// keyFromURL maps a URL produced by [objectURL] back to its object key.
// An absolute base requires the same host, a relative base a relative URL,
// and the key must lie under keyPrefix.
func keyFromURL(base *url.URL, keyPrefix, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBlobURL, err)
	}
	if base.Host != "" {
		if !strings.EqualFold(u.Host, base.Host) || !strings.EqualFold(u.Scheme, base.Scheme) {
			return "", fmt.Errorf("%w: %q does not belong to the blob store", ErrInvalidBlobURL, rawURL)
		}
	} else if u.Host != "" || u.Scheme != "" {
		return "", fmt.Errorf("%w: %q does not belong to the blob store", ErrInvalidBlobURL, rawURL)
	}

	prefix := strings.TrimRight(base.Path, "/") + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("%w: path %q is outside of the blob store", ErrInvalidBlobURL, u.Path)
	}

	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidBlobURL)
	}
	if !strings.HasPrefix(key, keyPrefix) || key == keyPrefix {
		return "", fmt.Errorf("%w: key %q is outside of %q", ErrInvalidBlobURL, key, keyPrefix)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: key %q is not a clean relative path", ErrInvalidBlobURL, key)
		}
	}
	return key, nil
}
