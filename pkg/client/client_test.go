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
	"errors"
	"net/http"
	"testing"

	"github.com/daniilr/yandex-delivery-go/pkg/config"
	"github.com/daniilr/yandex-delivery-go/pkg/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTransport is a test double that records every Send call and
// answers with a canned response.
type recordingTransport struct {
	calls    int
	lastURL  string
	lastBody string
	header   http.Header

	response []byte
	err      error
}

func (t *recordingTransport) Send(ctx context.Context, url string, body []byte, header http.Header) ([]byte, error) {
	t.calls++
	t.lastURL = url
	t.lastBody = string(body)
	t.header = header
	if t.err != nil {
		return nil, t.err
	}
	return t.response, nil
}

func newTestClient(t *testing.T, tr Transport) *Client {
	t.Helper()
	c, err := New(config.Config{
		ClientID: 100,
		SenderID: 200,
		MethodKeys: map[string]string{
			"getSenderInfo": "topsecret",
			"getIndex":      "indexkey",
		},
	}, tr)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.Config{SenderID: 1}, nil)
	assert.Error(t, err)
}

func TestRequest_MissingMethodKey(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok"}`)}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "unregisteredMethod")

	// The failure is pre-flight: the transport must never be invoked.
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, "unregisteredMethod", confErr.Method)
	assert.Equal(t, 0, tr.calls)
}

func TestRequest_BodyAndURL(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok"}`)}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "getSenderInfo")

	require.NoError(t, err)
	require.Equal(t, 1, tr.calls)
	assert.Equal(t, "https://delivery.yandex.ru/api/1.0/getSenderInfo", tr.lastURL)

	// canonical "100"+"200" + key "topsecret" -> md5("100200topsecret")
	assert.Equal(t,
		"client_id=100&sender_id=200&secret_key=28a7eedcdaca534cdd62bd71b5a3fee2&",
		tr.lastBody)

	assert.Contains(t, tr.header.Get("User-Agent"), "YandexDeliveryClient/Go")
	assert.Equal(t, "application/x-www-form-urlencoded", tr.header.Get("Content-Type"))
}

func TestRequest_ZeroValuedParamsAreDropped(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok"}`)}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "getSenderInfo",
		param.M("comment", param.String("")),
		param.M("total_cost", param.Float(0)))

	require.NoError(t, err)
	assert.NotContains(t, tr.lastBody, "comment")
	assert.NotContains(t, tr.lastBody, "total_cost")

	// Zero values do not influence the signature either: the body is
	// identical to a call without them.
	assert.Equal(t,
		"client_id=100&sender_id=200&secret_key=28a7eedcdaca534cdd62bd71b5a3fee2&",
		tr.lastBody)
}

func TestRequest_OKResponse(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok","data":{"id":7}}`)}
	c := newTestClient(t, tr)

	resp, err := c.Request(context.Background(), "getSenderInfo")

	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), data["id"])
}

func TestRequest_ServerError(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"error","error":"E1"}`)}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "getSenderInfo")

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "E1", protoErr.Code)
	assert.Equal(t, "error", protoErr.Response["status"])
	assert.Equal(t, `{"status":"error","error":"E1"}`, string(protoErr.Raw))
	assert.Contains(t, protoErr.Error(), "E1")
}

func TestRequest_MalformedResponse(t *testing.T) {
	tr := &recordingTransport{response: []byte("<html>not json</html>")}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "getSenderInfo")

	var malformedErr *MalformedResponseError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "<html>not json</html>", string(malformedErr.Body))
}

func TestRequest_TransportFailure(t *testing.T) {
	sentinel := errors.New("connection refused")
	tr := &recordingTransport{err: sentinel}
	c := newTestClient(t, tr)

	_, err := c.Request(context.Background(), "getSenderInfo")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, transportErr.URL, "getSenderInfo")
}

func TestRequest_BaseURLAndVersionOverride(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok"}`)}
	c, err := New(config.Config{
		ClientID:   1,
		SenderID:   2,
		BaseURL:    "https://sandbox.example.com/api",
		APIVersion: "2.0",
		MethodKeys: map[string]string{"getSenderInfo": "k"},
	}, tr)
	require.NoError(t, err)

	_, err = c.Request(context.Background(), "getSenderInfo")

	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.example.com/api/2.0/getSenderInfo", tr.lastURL)
}

func TestClient_ConfigCopiedAtConstruction(t *testing.T) {
	tr := &recordingTransport{response: []byte(`{"status":"ok"}`)}
	cfg := config.Config{
		ClientID:   100,
		SenderID:   200,
		MethodKeys: map[string]string{"getSenderInfo": "topsecret"},
	}
	c, err := New(cfg, tr)
	require.NoError(t, err)

	// Mutating the source config after construction must not leak into the
	// client.
	cfg.MethodKeys["getSenderInfo"] = "changed"
	delete(cfg.MethodKeys, "getSenderInfo")

	_, err = c.Request(context.Background(), "getSenderInfo")
	require.NoError(t, err)
	assert.Contains(t, tr.lastBody, "secret_key=28a7eedcdaca534cdd62bd71b5a3fee2&")
}
