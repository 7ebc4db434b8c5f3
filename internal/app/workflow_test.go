package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multi-ai/backend/internal/model"
)

// TestFullChatWorkflow drives the whole HTTP API against fake provider
// backends: configure a key, send a turn to two providers, then manage the
// resulting conversation.
func TestFullChatWorkflow(t *testing.T) {
	claude := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Four."}]}`))
	}))
	defer claude.Close()
	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"2+2=4"},"done":true}`))
	}))
	defer ollama.Close()

	cfg := testConfig(t)
	cfg.ClaudeURL = claude.URL
	cfg.OllamaURL = ollama.URL
	a, err := NewApp(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	srv := httptest.NewServer(a.Server.Handler)
	defer srv.Close()
	baseAPIURL := srv.URL + "/api/v1"

	do := func(method, path, body string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, baseAPIURL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	var conv model.Conversation

	t.Run("SetAPIKey", func(t *testing.T) {
		resp := do(http.MethodPut, "/settings/keys/claude", `{"key":"sk-test"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("SendMessage", func(t *testing.T) {
		resp := do(http.MethodPost, "/chats/messages", `{"content":"What is 2+2?","providers":["claude","ollama"]}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		answers := map[string]string{}
		scanner := bufio.NewScanner(resp.Body)
		event := ""
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data := []byte(strings.TrimPrefix(line, "data: "))
				if event == "done" {
					require.NoError(t, json.Unmarshal(data, &conv))
				} else {
					var e struct {
						Message model.Message `json:"message"`
					}
					require.NoError(t, json.Unmarshal(data, &e))
					answers[e.Message.Provider] = e.Message.Content
				}
				event = ""
			}
		}
		require.NoError(t, scanner.Err())

		assert.Equal(t, map[string]string{"claude": "Four.", "ollama": "2+2=4"}, answers)
		require.NotEmpty(t, conv.ID, "stream finished without a done event")
		assert.Equal(t, "What is 2+2?", conv.Title)
		assert.Len(t, conv.Messages, 3)
	})

	t.Run("GetConversation", func(t *testing.T) {
		resp := do(http.MethodGet, "/conversations/"+conv.ID, "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.Conversation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got.Messages, 3)
	})

	t.Run("RateAnswer", func(t *testing.T) {
		msgID := ""
		for _, m := range conv.Messages {
			if m.Provider == "claude" {
				msgID = m.ID
			}
		}
		require.NotEmpty(t, msgID)

		resp := do(http.MethodPut, fmt.Sprintf("/conversations/%s/messages/%s/rating", conv.ID, msgID), `{"rating":"up"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("UpdateTitle", func(t *testing.T) {
		resp := do(http.MethodPut, "/conversations/"+conv.ID+"/title", `{"title":"Simple Math Question"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Search", func(t *testing.T) {
		resp := do(http.MethodGet, "/search?q=MATH", "")
		defer resp.Body.Close()

		var result struct {
			Active  bool                 `json:"active"`
			Results []model.Conversation `json:"results"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Active)
		require.Len(t, result.Results, 1)
		assert.Equal(t, conv.ID, result.Results[0].ID)
	})

	t.Run("DeleteConversation", func(t *testing.T) {
		resp := do(http.MethodDelete, "/conversations/"+conv.ID, "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("VerifyDeletion", func(t *testing.T) {
		resp := do(http.MethodGet, "/conversations", "")
		defer resp.Body.Close()

		var convs []model.Conversation
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&convs))
		assert.Empty(t, convs)
	})
}
