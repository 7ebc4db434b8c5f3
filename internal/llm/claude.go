package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"multi-ai/backend/internal/model"
)

const (
	anthropicVersion = "2023-06-01"
	claudeMaxTokens  = 4096
)

type claudeAdapter struct {
	url   string
	model string
}

func NewClaudeAdapter(url, modelName string) Adapter {
	return &claudeAdapter{url: url, model: modelName}
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *claudeAdapter) Name() string        { return "claude" }
func (a *claudeAdapter) DisplayName() string { return "Claude" }

func (a *claudeAdapter) toWireFormat(history []model.Message) []claudeMessage {
	visible := VisibleHistory(a.Name(), history)
	out := make([]claudeMessage, 0, len(visible))
	for _, m := range visible {
		role := "assistant"
		if m.Role == model.RoleUser {
			role = "user"
		}
		out = append(out, claudeMessage{Role: role, Content: m.Content})
	}
	return out
}

func (a *claudeAdapter) BuildRequest(ctx context.Context, history []model.Message, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, a.url, claudeRequest{
		Model:     a.model,
		MaxTokens: claudeMaxTokens,
		Messages:  a.toWireFormat(history),
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", credential)
	req.Header.Set("anthropic-version", anthropicVersion)
	return req, nil
}

func (a *claudeAdapter) ParseResponse(body []byte) (string, error) {
	var resp claudeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	if resp.Error != nil {
		return "", NewError(ErrUpstreamError, a.DisplayName(), 0, resp.Error.Message)
	}
	if len(resp.Content) == 0 {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	var sb strings.Builder
	for _, c := range resp.Content {
		sb.WriteString(c.Text)
	}
	return sb.String(), nil
}
