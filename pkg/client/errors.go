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

import "fmt"

// ConfigurationError reports a request for a method that has no registered
// method key. It is raised before any network I/O; the client instance
// itself remains usable.
type ConfigurationError struct {
	Method string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("method %q has no method key defined for it", e.Method)
}

// ValidationError reports call arguments that violate an endpoint's
// preconditions. It is raised before any network I/O.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid arguments: " + e.Reason
}

// TransportError reports a failure of the underlying HTTP exchange. The
// transport's error is wrapped unmodified and available via Unwrap.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a response body that is not valid JSON.
// Body holds the raw bytes for diagnostics.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a well-formed response with status "error". Code is
// the server-supplied error field; Raw and Response carry the full payload
// for diagnostics.
type ProtocolError struct {
	Code     string
	Raw      []byte
	Response Response
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("server responded with error %s (full output: %s)", e.Code, e.Raw)
}
