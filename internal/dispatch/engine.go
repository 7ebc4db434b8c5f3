// Package dispatch fans one conversation turn out to several providers.
//
// The Engine is stateless apart from its collaborators: every call to Dispatch
// works only on its arguments, so dispatches for different conversations can
// run at the same time. Callers that need "one dispatch per conversation"
// semantics hold that state themselves.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"multi-ai/backend/internal/llm"
	"multi-ai/backend/internal/model"
)

// maxResponseSize caps how much of a provider response body is read.
const maxResponseSize = 10 * 1024 * 1024

// CredentialSource resolves the stored API key for a provider. An empty key
// with a nil error means "not configured".
type CredentialSource interface {
	Credential(ctx context.Context, provider string) (string, error)
}

// Result is the settled outcome of one provider call. Exactly one of Content
// and Error is set.
type Result struct {
	Provider  string `json:"provider"`
	Content   string `json:"content,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Err       error  `json:"-"`
}

// OK reports whether the provider produced content.
func (r Result) OK() bool { return r.Err == nil }

// Sink receives each Result as soon as its provider settles.
type Sink func(Result)

type Engine struct {
	registry *llm.Registry
	creds    CredentialSource
	client   *http.Client
}

// NewEngine creates an Engine. A nil client uses a plain http.Client without
// a timeout: failures surface only from the transport.
func NewEngine(registry *llm.Registry, creds CredentialSource, client *http.Client) *Engine {
	if client == nil {
		client = &http.Client{}
	}
	return &Engine{registry: registry, creds: creds, client: client}
}

// Dispatch calls every distinct provider in providers concurrently with the
// same history. onEach (may be nil) is called once per provider in completion
// order, always from the calling goroutine. The returned slice holds every
// Result once all providers have settled; a failing provider never cancels or
// delays the others.
func (e *Engine) Dispatch(ctx context.Context, providers []string, history []model.Message, onEach Sink) []Result {
	names := distinct(providers)
	if len(names) == 0 {
		return []Result{}
	}

	results := make(chan Result, len(names))
	var wg sync.WaitGroup

	for _, name := range names {
		adapter, ok := e.registry.Lookup(name)
		if !ok {
			results <- failure(name, 0, llm.NewError(llm.ErrUnknownProvider, name, 0, ""))
			continue
		}

		credential := ""
		if llm.RequiresCredential(adapter) {
			key, err := e.creds.Credential(ctx, name)
			if err != nil {
				slog.WarnContext(ctx, "Could not resolve provider credential", "provider", name, "error", err)
			}
			if key == "" {
				results <- failure(name, 0, llm.NewError(llm.ErrMissingCredential, adapter.DisplayName(), 0, ""))
				continue
			}
			credential = key
		}

		wg.Add(1)
		go func(a llm.Adapter, key string) {
			defer wg.Done()
			results <- e.call(ctx, a, history, key)
		}(adapter, credential)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]Result, 0, len(names))
	for r := range results {
		if onEach != nil {
			onEach(r)
		}
		out = append(out, r)
	}
	return out
}

// call performs one provider request and classifies its outcome.
func (e *Engine) call(ctx context.Context, a llm.Adapter, history []model.Message, credential string) Result {
	start := time.Now()
	elapsed := func() int64 { return time.Since(start).Milliseconds() }

	req, err := a.BuildRequest(ctx, history, credential)
	if err != nil {
		return failure(a.Name(), elapsed(), llm.NewError(llm.ErrUpstreamError, a.DisplayName(), 0, err.Error()))
	}

	resp, err := e.client.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "Provider request failed", "provider", a.Name(), "error", err)
		return failure(a.Name(), elapsed(), llm.NewError(llm.ErrNetworkUnavailable, a.DisplayName(), 0, ""))
	}
	defer resp.Body.Close()

	if !llm.IsSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return failure(a.Name(), elapsed(), llm.ClassifyStatus(a.DisplayName(), resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return failure(a.Name(), elapsed(), llm.NewError(llm.ErrNetworkUnavailable, a.DisplayName(), 0, ""))
	}

	text, err := a.ParseResponse(body)
	latency := elapsed()
	if err != nil {
		var pe *llm.ProviderError
		if !errors.As(err, &pe) {
			pe = llm.NewError(llm.ErrMalformedResponse, a.DisplayName(), 0, "")
		}
		return failure(a.Name(), latency, pe)
	}
	if text == "" {
		// A 2xx with no text (e.g. only tool calls) is not an answer.
		return failure(a.Name(), latency, llm.NewError(llm.ErrMalformedResponse, a.DisplayName(), 0, ""))
	}

	slog.DebugContext(ctx, "Provider call completed", "provider", a.Name(), "latency_ms", latency)
	return Result{Provider: a.Name(), Content: text, LatencyMs: latency}
}

func failure(provider string, latency int64, pe *llm.ProviderError) Result {
	return Result{
		Provider:  provider,
		LatencyMs: latency,
		Error:     pe.Message,
		ErrorCode: pe.Code(),
		Err:       pe,
	}
}

// distinct drops empty and repeated names, keeping first occurrences in order.
func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
