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

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	ydelivery "github.com/daniilr/yandex-delivery-go"
	"github.com/daniilr/yandex-delivery-go/pkg/config"
	"github.com/daniilr/yandex-delivery-go/pkg/param"
	"github.com/daniilr/yandex-delivery-go/pkg/query"
	"github.com/daniilr/yandex-delivery-go/pkg/signer"
	"github.com/daniilr/yandex-delivery-go/pkg/transport"
)

// Transport sends a finished request body and returns the raw response
// bytes. transport.HTTPTransport is the production implementation.
type Transport interface {
	Send(ctx context.Context, url string, body []byte, header http.Header) ([]byte, error)
}

// Response is a decoded JSON response from the delivery API.
type Response map[string]any

// Client is a delivery API client that signs every outgoing request with
// the method's key.
//
// A Client holds only immutable configuration after construction and is
// safe for concurrent use; each request is independent.
type Client struct {
	baseURL      string
	apiVersion   string
	userAgent    string
	clientID     int
	senderID     int
	warehouseIDs []int
	requisiteIDs []int
	methodKeys   map[string]string
	transport    Transport
}

// New creates a Client from cfg.
// If t is nil, an HTTP transport over http.DefaultClient is used.
func New(cfg config.Config, t Transport) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		t = transport.NewHTTPTransport(nil)
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		userAgent: fmt.Sprintf("YandexDeliveryClient/Go %s (+https://github.com/daniilr/yandex-delivery-go)",
			ydelivery.Version),
		clientID:     cfg.ClientID,
		senderID:     cfg.SenderID,
		warehouseIDs: append([]int(nil), cfg.WarehouseIDs...),
		requisiteIDs: append([]int(nil), cfg.RequisiteIDs...),
		methodKeys:   make(map[string]string, len(cfg.MethodKeys)),
		transport:    t,
	}
	if c.baseURL == "" {
		c.baseURL = ydelivery.DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = ydelivery.APIVersion
	}
	for method, key := range cfg.MethodKeys {
		c.methodKeys[method] = key
	}
	return c, nil
}

// Request calls an API method with the given parameters.
//
// The pipeline: look up the method key, inject client_id and sender_id,
// sign the tree, append the signature as secret_key, drop zero-valued
// entries, encode the rest as a bracket-notation form body, and POST it to
// {base}/{version}/{method}. A missing method key fails with
// *ConfigurationError before any I/O.
//
// The response is decoded as JSON: a body that does not parse yields
// *MalformedResponseError, a status of "error" yields *ProtocolError, and
// anything else is returned as the Response.
func (c *Client) Request(ctx context.Context, method string, members ...param.Member) (Response, error) {
	key, ok := c.methodKeys[method]
	if !ok {
		return nil, &ConfigurationError{Method: method}
	}

	data := param.Map(members...).With(
		param.M("client_id", param.Int(c.clientID)),
		param.M("sender_id", param.Int(c.senderID)),
	)
	data = data.With(param.M("secret_key", param.String(signer.Sign(data, key))))

	// Drop zero-valued entries so the body matches the signed view of the
	// tree exactly.
	kept := make([]param.Member, 0, data.Len())
	for _, m := range data.Members() {
		if m.Value.IsZero() {
			continue
		}
		kept = append(kept, m)
	}
	body := query.Encode(param.Map(kept...))

	url := c.baseURL + "/" + c.apiVersion + "/" + method
	header := http.Header{}
	header.Set("User-Agent", c.userAgent)
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	raw, err := c.transport.Send(ctx, url, []byte(body), header)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &MalformedResponseError{Body: raw, Err: err}
	}
	if status, _ := resp["status"].(string); status == "error" {
		code, _ := resp["error"].(string)
		return nil, &ProtocolError{Code: code, Raw: raw, Response: resp}
	}
	return resp, nil
}

// UserAgent returns the User-Agent header value attached to every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}
