// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/utils"
)

type ipResponse struct {
	IP string `json:"ip"`
}

type ipifyAdapter struct {
	client *utils.HTTPClient
	url    string
}

// NewIPifyAdapter returns an [IPLookup] that calls cfg.IPLookupURL, which
// must answer with an ipify style {"ip": "..."} document.
func NewIPifyAdapter(cfg config.Adapter) IPLookup {
	return &ipifyAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		url:    cfg.IPLookupURL,
	}
}

func (a *ipifyAdapter) LookupIP(ctx context.Context) (string, error) {
	var result ipResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(a.url)
	if err != nil {
		return "", fmt.Errorf("ip lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	ip := strings.TrimSpace(result.IP)
	if ip == "" {
		return "", ErrEmptyIPAddress
	}
	return ip, nil
}
