// Copyright (C) 2025 yandex-delivery-go contributors
//
// This file is part of yandex-delivery-go.
//
// yandex-delivery-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yandex-delivery-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with yandex-delivery-go.  If not, see <https://www.gnu.org/licenses/>.

// Package config supplies the construction-time configuration of a delivery
// API client: account identity, default warehouse and requisite IDs, and the
// method key registry.
//
// The values come from the service's settings page (Integration -> API).
// The client core never reads the environment itself; FromEnv is a
// convenience for callers that keep credentials in env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config holds everything a client needs at construction. It is copied into
// the client; later mutation of a Config has no effect on clients already
// built from it.
type Config struct {
	// ClientID is the account identifier in the delivery service.
	ClientID int `env:"YD_CLIENT_ID"`

	// SenderID identifies the shop within the account.
	SenderID int `env:"YD_SENDER_ID"`

	// BaseURL overrides the production API endpoint. Empty means the default.
	BaseURL string `env:"YD_BASE_URL"`

	// APIVersion overrides the API version path segment. Empty means "1.0".
	APIVersion string `env:"YD_API_VERSION"`

	// WarehouseIDs are the account's warehouse identifiers; the first one is
	// the default order_warehouse for created orders.
	WarehouseIDs []int

	// RequisiteIDs are the shop requisite identifiers; the first one is the
	// default order_requisite for created orders.
	RequisiteIDs []int

	// MethodKeys maps an API method name to its signing key. A method
	// without an entry here cannot be called.
	MethodKeys map[string]string
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.ClientID == 0 {
		return errors.New("config: client id is required")
	}
	if c.SenderID == 0 {
		return errors.New("config: sender id is required")
	}
	return nil
}

// FromEnv builds a Config from the environment:
//
//	YD_CLIENT_ID      account identifier (required)
//	YD_SENDER_ID      shop identifier (required)
//	YD_BASE_URL       optional endpoint override
//	YD_API_VERSION    optional version override
//	YD_WAREHOUSE_IDS  comma-separated integers
//	YD_REQUISITE_IDS  comma-separated integers
//	YD_METHOD_KEYS    comma-separated method:key pairs
func FromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}

	var err error
	if cfg.WarehouseIDs, err = parseIDList(os.Getenv("YD_WAREHOUSE_IDS")); err != nil {
		return Config{}, fmt.Errorf("config: YD_WAREHOUSE_IDS: %w", err)
	}
	if cfg.RequisiteIDs, err = parseIDList(os.Getenv("YD_REQUISITE_IDS")); err != nil {
		return Config{}, fmt.Errorf("config: YD_REQUISITE_IDS: %w", err)
	}
	if cfg.MethodKeys, err = ParseMethodKeys(os.Getenv("YD_METHOD_KEYS")); err != nil {
		return Config{}, fmt.Errorf("config: YD_METHOD_KEYS: %w", err)
	}

	return cfg, nil
}

// ParseMethodKeys parses a comma-separated list of method:key pairs, e.g.
// "createOrder:abc123,getSenderInfo:def456". An empty string yields an empty
// registry.
func ParseMethodKeys(s string) (map[string]string, error) {
	keys := make(map[string]string)
	if s == "" {
		return keys, nil
	}
	for _, pair := range strings.Split(s, ",") {
		method, key, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || method == "" || key == "" {
			return nil, fmt.Errorf("malformed method:key pair %q", pair)
		}
		keys[method] = key
	}
	return keys, nil
}

func parseIDList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("malformed id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
