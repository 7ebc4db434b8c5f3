package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"multi-ai/backend/internal/model"
)

type geminiAdapter struct {
	url   string
	model string
}

// NewGeminiAdapter takes the models collection URL, e.g.
// https://generativelanguage.googleapis.com/v1beta/models. Requests go to
// <baseURL>/<model>:generateContent.
func NewGeminiAdapter(baseURL, modelName string) Adapter {
	return &geminiAdapter{url: baseURL, model: modelName}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *geminiAdapter) Name() string        { return "gemini" }
func (a *geminiAdapter) DisplayName() string { return "Gemini" }

func (a *geminiAdapter) toWireFormat(history []model.Message) []geminiContent {
	visible := VisibleHistory(a.Name(), history)
	out := make([]geminiContent, 0, len(visible))
	for _, m := range visible {
		role := "model"
		if m.Role == model.RoleUser {
			role = "user"
		}
		out = append(out, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}
	return out
}

func (a *geminiAdapter) BuildRequest(ctx context.Context, history []model.Message, credential string) (*http.Request, error) {
	endpoint, err := url.Parse(a.url)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini endpoint: %w", err)
	}
	endpoint = endpoint.JoinPath(a.model + ":generateContent")
	q := endpoint.Query()
	q.Set("key", credential)
	endpoint.RawQuery = q.Encode()

	return newJSONRequest(ctx, endpoint.String(), geminiRequest{Contents: a.toWireFormat(history)})
}

func (a *geminiAdapter) ParseResponse(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	if resp.Error != nil {
		return "", NewError(ErrUpstreamError, a.DisplayName(), resp.Error.Code, resp.Error.Message)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", NewError(ErrMalformedResponse, a.DisplayName(), 0, "")
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
