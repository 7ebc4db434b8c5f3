package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"multi-ai/backend/internal/model"
)

// Adapter translates between the canonical history and one provider's HTTP API.
type Adapter interface {
	// Name is the registry key stored on assistant messages, e.g. "claude".
	Name() string
	// DisplayName qualifies user-facing error messages, e.g. "Claude".
	DisplayName() string
	// BuildRequest returns the fully formed outbound call for this provider.
	BuildRequest(ctx context.Context, history []model.Message, credential string) (*http.Request, error)
	// ParseResponse extracts generated text from a successful response body.
	ParseResponse(body []byte) (string, error)
}

// CredentialFree is implemented by adapters for local backends that need no
// API key; the dispatcher skips the credential check for them.
type CredentialFree interface {
	CredentialFree() bool
}

// VisibleHistory returns the part of history a provider may see: every user
// message plus only the assistant messages that provider produced itself.
func VisibleHistory(provider string, history []model.Message) []model.Message {
	out := make([]model.Message, 0, len(history))
	for _, m := range history {
		if m.Role == model.RoleUser || (m.Role == model.RoleAssistant && m.Provider == provider) {
			out = append(out, m)
		}
	}
	return out
}

// newJSONRequest marshals body and builds a POST with a JSON content type.
func newJSONRequest(ctx context.Context, endpoint string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Registry maps provider identifiers to adapters.
type Registry struct {
	adapters map[string]Adapter
	order    []string
}

// NewRegistry registers adapters in the given order; a later adapter with the
// same name replaces an earlier one.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

func (r *Registry) Register(a Adapter) {
	if _, exists := r.adapters[a.Name()]; !exists {
		r.order = append(r.order, a.Name())
	}
	r.adapters[a.Name()] = a
}

func (r *Registry) Lookup(name string) (Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// Names returns provider ids in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Adapters returns registered adapters in registration order.
func (r *Registry) Adapters() []Adapter {
	out := make([]Adapter, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.adapters[name])
	}
	return out
}

// RequiresCredential reports whether dispatching to a needs an API key.
func RequiresCredential(a Adapter) bool {
	if cf, ok := a.(CredentialFree); ok {
		return !cf.CredentialFree()
	}
	return true
}
