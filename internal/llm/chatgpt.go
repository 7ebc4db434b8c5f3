package llm

import (
	"context"
	"encoding/json"
	"net/http"

	"multi-ai/backend/internal/model"
)

const chatGPTMaxTokens = 4096

type chatGPTAdapter struct {
	url   string
	model string
}

func NewChatGPTAdapter(url, modelName string) Adapter {
	return &chatGPTAdapter{url: url, model: modelName}
}

// Message is the role/content pair shared by the OpenAI and Ollama chat APIs.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGPTRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type chatGPTResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (a *chatGPTAdapter) Name() string        { return "chatgpt" }
func (a *chatGPTAdapter) DisplayName() string { return "ChatGPT" }

// toChatMessages maps the provider's visible history onto user/assistant roles.
func toChatMessages(provider string, history []model.Message) []Message {
	visible := VisibleHistory(provider, history)
	out := make([]Message, 0, len(visible))
	for _, m := range visible {
		role := "assistant"
		if m.Role == model.RoleUser {
			role = "user"
		}
		out = append(out, Message{Role: role, Content: m.Content})
	}
	return out
}

func (a *chatGPTAdapter) BuildRequest(ctx context.Context, history []model.Message, credential string) (*http.Request, error) {
	req, err := newJSONRequest(ctx, a.url, chatGPTRequest{
		Model:     a.model,
		Messages:  toChatMessages(a.Name(), history),
		MaxTokens: chatGPTMaxTokens,
	})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)
	return req, nil
}

func (a *chatGPTAdapter) ParseResponse(body []byte) (string, error) {
	var resp chatGPTResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	if resp.Error != nil {
		return "", NewError(ErrUpstreamError, a.DisplayName(), 0, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	return resp.Choices[0].Message.Content, nil
}
