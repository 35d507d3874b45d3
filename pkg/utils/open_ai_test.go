package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func newChatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func completionBody(content string) string {
	raw, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	})
	return string(raw)
}

func TestOpenAIClientSuccess(t *testing.T) {
	server := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		assert.Equal(t, "user", msgs[1].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody(`{"name":"rome","count":2}`))
	})
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", server.URL)

	var out testPayload
	err := client.GetStructuredResponse(context.Background(), StructuredRequest{
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "rome", out.Name)
	assert.Equal(t, 2, out.Count)
}

func TestOpenAIClientStatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"invalid key", http.StatusUnauthorized, ErrAIInvalidKey},
		{"rate limited", http.StatusTooManyRequests, ErrAIRateLimited},
		{"bad request", http.StatusBadRequest, ErrAIBadRequest},
		{"server error", http.StatusInternalServerError, ErrAIUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrAIUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				fmt.Fprint(w, `{"error":{"message":"upstream says no","type":"test_error"}}`)
			})
			defer server.Close()

			client := NewOpenAIClient("test-key", "", server.URL)

			var out testPayload
			err := client.GetStructuredResponse(context.Background(), StructuredRequest{
				SystemPrompt: "s",
				UserPrompt:   "u",
			}, &out)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOpenAIClientInvalidResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json content", completionBody("this is not json")},
		{"schema violation", completionBody(`{"count":0}`)},
		{"empty choices", `{"id":"x","object":"chat.completion","choices":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tc.body)
			})
			defer server.Close()

			client := NewOpenAIClient("test-key", "", server.URL)

			var out testPayload
			err := client.GetStructuredResponse(context.Background(), StructuredRequest{
				SystemPrompt: "s",
				UserPrompt:   "u",
			}, &out)

			assert.ErrorIs(t, err, ErrAIResponseInvalid)
		})
	}
}

func TestOpenAIClientConnectionFailure(t *testing.T) {
	server := newChatServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // refuse connections

	client := NewOpenAIClient("test-key", "", server.URL)

	var out testPayload
	err := client.GetStructuredResponse(context.Background(), StructuredRequest{
		SystemPrompt: "s",
		UserPrompt:   "u",
	}, &out)

	assert.ErrorIs(t, err, ErrAIConnection)
}
