package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"multi-ai/backend/internal/model"
)

type ollamaAdapter struct {
	url   string
	model string
}

// NewOllamaAdapter talks to a local Ollama server; url is its base address.
func NewOllamaAdapter(url, modelName string) Adapter {
	return &ollamaAdapter{url: strings.TrimRight(url, "/"), model: modelName}
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Model   string   `json:"model"`
	Message *Message `json:"message"`
	Done    bool     `json:"done"`
	Error   string   `json:"error"`
}

func (a *ollamaAdapter) Name() string         { return "ollama" }
func (a *ollamaAdapter) DisplayName() string  { return "Ollama" }
func (a *ollamaAdapter) CredentialFree() bool { return true }

func (a *ollamaAdapter) BuildRequest(ctx context.Context, history []model.Message, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, a.url+"/api/chat", ollamaChatRequest{
		Model:    a.model,
		Messages: toChatMessages(a.Name(), history),
		Stream:   false,
	})
	if err != nil {
		return nil, err
	}
	// Only sent when a key is configured, e.g. for an authenticating proxy.
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	return req, nil
}

func (a *ollamaAdapter) ParseResponse(body []byte) (string, error) {
	var resp ollamaChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	if resp.Error != "" {
		return "", NewError(ErrUpstreamError, a.DisplayName(), 0, resp.Error)
	}
	if resp.Message == nil {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	return resp.Message.Content, nil
}
