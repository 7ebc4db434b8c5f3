package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multi-ai/backend/internal/model"
)

func decodeBody(t *testing.T, req *http.Request, v any) {
	t.Helper()
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestVisibleHistory(t *testing.T) {
	visible := VisibleHistory("claude", sampleHistory())

	ids := make([]string, 0, len(visible))
	for _, m := range visible {
		ids = append(ids, m.ID)
	}
	// Sibling answers (chatgpt, ollama) never leak into claude's view.
	assert.Equal(t, []string{"m1", "m2", "m5"}, ids)
}

func TestClaudeAdapter(t *testing.T) {
	adapter := NewClaudeAdapter("https://claude.test/v1/messages", "claude-test")

	t.Run("BuildRequest", func(t *testing.T) {
		req, err := adapter.BuildRequest(context.Background(), sampleHistory(), "sk-ant")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "https://claude.test/v1/messages", req.URL.String())
		assert.Equal(t, "sk-ant", req.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", req.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var body claudeRequest
		decodeBody(t, req, &body)
		assert.Equal(t, "claude-test", body.Model)
		assert.Equal(t, 4096, body.MaxTokens)
		assert.Equal(t, []claudeMessage{
			{Role: "user", Content: "first question"},
			{Role: "assistant", Content: "claude answer"},
			{Role: "user", Content: "second question"},
		}, body.Messages)
	})

	t.Run("ParseResponse joins text blocks", func(t *testing.T) {
		text, err := adapter.ParseResponse([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "Hello world", text)
	})

	t.Run("ParseResponse reports upstream error", func(t *testing.T) {
		_, err := adapter.ParseResponse([]byte(`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstreamError)
		assert.Equal(t, "Claude API error: Overloaded", err.Error())
	})

	t.Run("ParseResponse rejects unexpected shape", func(t *testing.T) {
		_, err := adapter.ParseResponse([]byte(`{"content":[]}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)

		_, err = adapter.ParseResponse([]byte(`not json`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestGeminiAdapter(t *testing.T) {
	adapter := NewGeminiAdapter("https://gemini.test/v1beta/models", "gemini-2.0-flash")

	t.Run("BuildRequest", func(t *testing.T) {
		req, err := adapter.BuildRequest(context.Background(), sampleHistory(), "g-key")
		require.NoError(t, err)

		assert.Equal(t, "g-key", req.URL.Query().Get("key"))
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", req.URL.Path)
		assert.Equal(t, http.MethodPost, req.Method)

		var body geminiRequest
		decodeBody(t, req, &body)
		require.Len(t, body.Contents, 2)
		assert.Equal(t, "user", body.Contents[0].Role)
		assert.Equal(t, []geminiPart{{Text: "first question"}}, body.Contents[0].Parts)
		assert.Equal(t, "user", body.Contents[1].Role)
	})

	t.Run("Configured model is in the path", func(t *testing.T) {
		pro := NewGeminiAdapter("https://gemini.test/v1beta/models/", "gemini-1.5-pro")
		req, err := pro.BuildRequest(context.Background(), sampleHistory(), "g-key")
		require.NoError(t, err)
		assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", req.URL.Path)
		assert.Equal(t, "g-key", req.URL.Query().Get("key"))
	})

	t.Run("Own answers use the model role", func(t *testing.T) {
		history := append(sampleHistory(), model.Message{Role: model.RoleAssistant, Provider: "gemini", Content: "gemini answer"})
		wire := adapter.(*geminiAdapter).toWireFormat(history)
		require.Len(t, wire, 3)
		assert.Equal(t, "model", wire[2].Role)
	})

	t.Run("ParseResponse", func(t *testing.T) {
		text, err := adapter.ParseResponse([]byte(`{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}}]}`))
		require.NoError(t, err)
		assert.Equal(t, "ab", text)

		_, err = adapter.ParseResponse([]byte(`{"candidates":[]}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)

		_, err = adapter.ParseResponse([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
		assert.ErrorIs(t, err, ErrUpstreamError)
		assert.Contains(t, err.Error(), "API key not valid")
	})
}

func TestChatGPTAdapter(t *testing.T) {
	adapter := NewChatGPTAdapter("https://openai.test/v1/chat/completions", "gpt-test")

	req, err := adapter.BuildRequest(context.Background(), sampleHistory(), "sk-openai")
	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-openai", req.Header.Get("Authorization"))

	var body chatGPTRequest
	decodeBody(t, req, &body)
	assert.Equal(t, "gpt-test", body.Model)
	assert.Equal(t, 4096, body.MaxTokens)
	assert.Equal(t, []Message{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "chatgpt answer"},
		{Role: "user", Content: "second question"},
	}, body.Messages)

	text, err := adapter.ParseResponse([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi"}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "hi", text)

	_, err = adapter.ParseResponse([]byte(`{"choices":[]}`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		kind   error
		msg    string
	}{
		{401, ErrInvalidCredential, "Claude rejected the API key. Check it in Settings."},
		{403, ErrForbidden, "Claude denied access. Check the API key permissions."},
		{429, ErrRateLimited, "Claude rate limit exceeded. Try again in a moment."},
		{500, ErrUpstreamUnavailable, "Claude server error. Please try again."},
		{503, ErrUpstreamUnavailable, "Claude server error. Please try again."},
		{404, ErrUpstreamError, "Claude API call failed. (404)"},
	}
	for _, tt := range tests {
		err := ClassifyStatus("Claude", tt.status)
		assert.ErrorIs(t, err, tt.kind, "status %d", tt.status)
		assert.Equal(t, tt.msg, err.Error())
		assert.Equal(t, tt.status, err.Status)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(
		NewClaudeAdapter("u", "m"),
		NewGeminiAdapter("u", "m"),
		NewChatGPTAdapter("u", "m"),
	)
	assert.Equal(t, []string{"claude", "gemini", "chatgpt"}, reg.Names())

	a, ok := reg.Lookup("gemini")
	require.True(t, ok)
	assert.Equal(t, "Gemini", a.DisplayName())
	assert.True(t, RequiresCredential(a))

	_, ok = reg.Lookup("mistral")
	assert.False(t, ok)

	// Re-registering a name replaces the adapter without duplicating it.
	reg.Register(NewClaudeAdapter("other", "m2"))
	assert.Equal(t, []string{"claude", "gemini", "chatgpt"}, reg.Names())

	adapters := reg.Adapters()
	require.Len(t, adapters, 3)
	for i, name := range reg.Names() {
		assert.Equal(t, name, adapters[i].Name())
	}
}
