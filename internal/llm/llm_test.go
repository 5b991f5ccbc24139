package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		want     any
		wantErr  bool
	}{
		{"", &OpenAIClient{}, false},
		{"deepseek", &OpenAIClient{}, false},
		{"openai", &OpenAIClient{}, false},
		{"ollama", &OpenAIClient{}, false},
		{"anthropic", &AnthropicClient{}, false},
		{"gemini", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			c, err := NewClient(ProviderConfig{Provider: tt.provider, APIKey: "k"})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}

func TestNewClient_DeepSeekDefaults(t *testing.T) {
	c, err := NewClient(ProviderConfig{Provider: "deepseek", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DeepSeekModel, c.(*OpenAIClient).model)
}

func TestOpenAIClient_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "晴", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"deepseek-chat",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"带把伞"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("sk-test", "deepseek-chat", srv.URL)
	resp, err := c.Chat(context.Background(), SystemPrompt, []Message{{Role: "user", Content: "晴"}})
	require.NoError(t, err)
	assert.Equal(t, "带把伞", resp.Content)
}

func TestAnthropicClient_Chat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req anthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sys", req.System[0].Text)
		assert.Equal(t, []anthMessage{{Role: "user", Content: "hi"}}, req.Messages)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"hello "},{"type":"text","text":"there"}]}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("key", "", srv.URL)
	resp, err := c.Chat(context.Background(), "sys", []Message{{Role: "system", Content: "skip"}, {Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hello there", resp.Content)
}

func TestAnthropicClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, 529)
	}))
	defer srv.Close()

	_, err := NewAnthropicClient("key", "", srv.URL).Chat(context.Background(), "sys", nil)
	assert.ErrorContains(t, err, "529")
}
