package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profilePayload struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

func newTestVault() (*Vault, *MemoryBackend) {
	backend := NewMemory()
	return New(backend, "unit_test_secret", "cap_secure_", nil), backend
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault()

	in := profilePayload{
		Name:   "Alice Doe",
		Email:  "alice@example.com",
		Skills: []string{"Go", "PostgreSQL", "Docker"},
	}
	require.True(t, v.Set(ctx, KeyProfile, in, 0))

	var out profilePayload
	require.True(t, v.Get(ctx, KeyProfile, &out))
	assert.Equal(t, in, out)
}

func TestStoredValueIsObfuscated(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	require.True(t, v.Set(ctx, KeyProfile, profilePayload{Name: "Alice Doe"}, 0))

	raw, err := backend.Get(ctx, "cap_secure_"+KeyProfile)
	require.NoError(t, err)
	assert.NotContains(t, raw, "Alice")
	assert.NotContains(t, raw, "version")
}

func TestEnvelopeTimestampCarriesExpiry(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	base := time.Now()
	v.now = func() time.Time { return base }
	require.True(t, v.Set(ctx, KeyProfile, profilePayload{Name: "Alice Doe"}, time.Hour))

	stored, err := backend.Get(ctx, "cap_secure_"+KeyProfile)
	require.NoError(t, err)

	env, err := v.decode(stored)
	require.NoError(t, err)
	assert.Equal(t, Version, env.Version)
	assert.Equal(t, base.Add(time.Hour).UnixMilli(), env.Timestamp)

	// The stored JSON is exactly {version, timestamp, data}.
	raw, err := base64.StdEncoding.DecodeString(stored)
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rotate(raw, "unit_test_secret", true), &fields))
	assert.ElementsMatch(t, []string{"version", "timestamp", "data"}, mapKeys(fields))

	// Without a ttl the timestamp stays zero.
	require.True(t, v.Set(ctx, KeyAnalyzedJobs, []string{"a"}, 0))
	stored, err = backend.Get(ctx, "cap_secure_"+KeyAnalyzedJobs)
	require.NoError(t, err)
	env, err = v.decode(stored)
	require.NoError(t, err)
	assert.Zero(t, env.Timestamp)
}

func mapKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestGetMissingKey(t *testing.T) {
	v, _ := newTestVault()

	var out profilePayload
	assert.False(t, v.Get(context.Background(), "nope", &out))
}

func TestExpiredValueIsRemoved(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	base := time.Now()
	v.now = func() time.Time { return base }
	require.True(t, v.Set(ctx, KeyAnalyzedJobs, []string{"a", "b"}, time.Hour))

	v.now = func() time.Time { return base.Add(2 * time.Hour) }

	var out []string
	assert.False(t, v.Get(ctx, KeyAnalyzedJobs, &out))

	_, err := backend.Get(ctx, "cap_secure_"+KeyAnalyzedJobs)
	assert.ErrorIs(t, err, ErrNotFound)

	// A second read is the same clean miss.
	assert.False(t, v.Get(ctx, KeyAnalyzedJobs, &out))
}

func TestVersionMismatchIsDropped(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	stale, err := v.encode(envelope{
		Version: "0.9",
		Data:    json.RawMessage(`{"name":"old"}`),
	})
	require.NoError(t, err)
	require.NoError(t, backend.Set(ctx, "cap_secure_"+KeyProfile, stale, 0))

	var out profilePayload
	assert.False(t, v.Get(ctx, KeyProfile, &out))

	_, err = backend.Get(ctx, "cap_secure_"+KeyProfile)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLegacyPlainValueMigrates(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	plain := `{"name":"Bob","email":"bob@example.com","skills":["Go"]}`
	require.NoError(t, backend.Set(ctx, "cap_secure_"+KeyProfile, plain, 0))

	var out profilePayload
	require.True(t, v.Get(ctx, KeyProfile, &out))
	assert.Equal(t, "Bob", out.Name)

	// The value is re-stored in the envelope format.
	raw, err := backend.Get(ctx, "cap_secure_"+KeyProfile)
	require.NoError(t, err)
	assert.NotEqual(t, plain, raw)

	var again profilePayload
	require.True(t, v.Get(ctx, KeyProfile, &again))
	assert.Equal(t, out, again)
}

func TestCorruptValueIsDropped(t *testing.T) {
	ctx := context.Background()
	v, backend := newTestVault()

	require.NoError(t, backend.Set(ctx, "cap_secure_"+KeyProfile, "%%% not base64, not json %%%", 0))

	var out profilePayload
	assert.False(t, v.Get(ctx, KeyProfile, &out))

	_, err := backend.Get(ctx, "cap_secure_"+KeyProfile)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScopedVaultsAreIsolated(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault()

	alice := v.Scoped("user-a")
	bob := v.Scoped("user-b")

	require.True(t, alice.Set(ctx, KeyProfile, profilePayload{Name: "Alice Doe"}, 0))
	require.True(t, bob.Set(ctx, KeyProfile, profilePayload{Name: "Bob Roe"}, 0))

	var out profilePayload
	require.True(t, alice.Get(ctx, KeyProfile, &out))
	assert.Equal(t, "Alice Doe", out.Name)

	alice.Clear(ctx)

	assert.False(t, alice.Get(ctx, KeyProfile, &out))
	require.True(t, bob.Get(ctx, KeyProfile, &out))
	assert.Equal(t, "Bob Roe", out.Name)
}

func TestRotateRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		`{"version":"1.0","data":{"a":1}}`,
		"plain text with spaces and ~tildes~",
		"unicode: résumé → ok",
	}
	for _, in := range inputs {
		encoded := rotate([]byte(in), "secret", false)
		decoded := rotate(encoded, "secret", true)
		assert.Equal(t, in, string(decoded))
	}
}

func TestRotateWithoutSecretIsIdentity(t *testing.T) {
	in := []byte(`{"a":1}`)
	assert.Equal(t, in, rotate(in, "", false))
}
