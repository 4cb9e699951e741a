package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careeragentpro/backend/pkg/llm"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("test-key", srv.URL, "test/model", "CareerAgentPro", "https://example.test")
	return srv, c
}

func TestGenerateSendsChatCompletionsRequest(t *testing.T) {
	var gotPath, gotAuth, gotTitle, gotReferer string
	var gotBody map[string]any

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.Header.Get("X-Title")
		gotReferer = r.Header.Get("HTTP-Referer")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "hello"}},
			},
		})
	})

	out, err := c.Generate(context.Background(), "other/model", "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "CareerAgentPro", gotTitle)
	assert.Equal(t, "https://example.test", gotReferer)
	assert.Equal(t, "other/model", gotBody["model"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "sys", first["content"])
}

func TestGenerateWithoutKeyFailsFast(t *testing.T) {
	called := false
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	c := New("", srv.URL, "m", "", "")

	_, err := c.Generate(context.Background(), "m", "s", "u")
	require.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.False(t, called, "no network call may happen without a credential")
}

func TestGenerateNonSuccessCarriesStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"payment required", http.StatusPaymentRequired},
		{"rate limited", http.StatusTooManyRequests},
		{"backend error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream unhappy", tt.status)
			})
			_, err := c.Generate(context.Background(), "m", "s", "u")
			require.Error(t, err)

			var se *llm.StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.Code)
			assert.Equal(t, tt.status, llm.StatusOf(err))
		})
	}
}

func TestGenerateUnexpectedShapeYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"not json", `<html>upstream proxy page</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			out, err := c.Generate(context.Background(), "m", "s", "u")
			require.NoError(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestAskUsesDefaultModel(t *testing.T) {
	var gotBody map[string]any
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "ok"}},
			},
		})
	})
	_, err := c.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "test/model", gotBody["model"])
}
