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

// Package transport performs the HTTP I/O for signed delivery API requests.
//
// The client package builds and signs requests but never touches the
// network itself; it hands the finished body to a transport. HTTPTransport
// is the production implementation over net/http. Tests substitute
// recording doubles that satisfy the same Send signature.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPTransport sends delivery API requests over HTTP.
//
// Each call is a single synchronous POST with no retries; cancellation and
// timeouts are delegated to the caller's context and the injected
// http.Client. Safe for concurrent use.
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport creates an HTTPTransport.
// If httpClient is nil, http.DefaultClient is used.
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{httpClient: httpClient}
}

// Send POSTs body to url with the given headers and returns the raw
// response bytes. A response outside the 2xx range is an error carrying the
// status and body.
func (t *HTTPTransport) Send(ctx context.Context, url string, body []byte, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s: %s", resp.StatusCode, resp.Status, string(respBody))
	}

	return respBody, nil
}
