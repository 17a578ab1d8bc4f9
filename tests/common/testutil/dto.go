//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"maps"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap re-encodes a request DTO as a JSON object and applies muts, so a test can break
// one field of an otherwise valid body.
func DtoMap(t *testing.T, dto any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))

	out := maps.Clone(m)
	for _, mut := range muts {
		mut(out)
	}
	return out
}

// Field sets key to value. A nil value drops the key from the body.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
