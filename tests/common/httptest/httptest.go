//go:build unit || e2e

// Package httptest drives a gin engine in-process and checks the JSON it answers with.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOption func(h map[string]string)

func WithHeader(key, value string) RequestOption {
	return func(h map[string]string) { h[key] = value }
}

// PerformRequest serves one request. A non-nil body is sent as JSON.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	headers := map[string]string{}
	var payload io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		payload = bytes.NewReader(raw)
		headers["Content-Type"] = "application/json"
	}
	for _, opt := range opts {
		opt(headers)
	}

	req := httptest.NewRequest(method, path, payload)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeJSON decodes the recorded body into a T.
func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "decode response body: %s", w.Body.String())
	return v
}
