//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

// AssertSuccessResponse checks the status and, for a 2xx with a non-nil target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains msg. An empty
// msg only checks the status and the body shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()
	decodeError(t, w, expectedStatus, msg)
}

// AssertErrorDetail checks the status and returns the detail object.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) map[string]any {
	t.Helper()
	return decodeError(t, w, expectedStatus, "").Detail
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String())
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}
