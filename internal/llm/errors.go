package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds a provider call can settle with. A *ProviderError matches its
// kind with errors.Is.
var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrUnknownProvider     = errors.New("unknown provider")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrForbidden           = errors.New("forbidden")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamError       = errors.New("upstream error")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrNetworkUnavailable  = errors.New("network unavailable")
)

var kindCodes = map[error]string{
	ErrMissingCredential:   "missing_credential",
	ErrUnknownProvider:     "unknown_provider",
	ErrInvalidCredential:   "invalid_credential",
	ErrForbidden:           "forbidden",
	ErrRateLimited:         "rate_limited",
	ErrUpstreamUnavailable: "upstream_unavailable",
	ErrUpstreamError:       "upstream_error",
	ErrMalformedResponse:   "malformed_response",
	ErrNetworkUnavailable:  "network_unavailable",
}

// ProviderError is a classified failure of one provider call. Message is the
// fixed, provider-qualified text shown to the user in place of content.
type ProviderError struct {
	Kind     error
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Unwrap() error { return e.Kind }

// Code is the stable snake_case name of the error kind.
func (e *ProviderError) Code() string {
	if code, ok := kindCodes[e.Kind]; ok {
		return code
	}
	return "unknown"
}

// NewError builds the classified error for kind. displayName qualifies the
// message; detail is the upstream-supplied text for ErrUpstreamError, if any.
func NewError(kind error, displayName string, status int, detail string) *ProviderError {
	var msg string
	switch kind {
	case ErrMissingCredential:
		msg = fmt.Sprintf("%s API key is not set. Add it in Settings > API keys.", displayName)
	case ErrUnknownProvider:
		msg = fmt.Sprintf("Unsupported provider: %s.", displayName)
	case ErrInvalidCredential:
		msg = fmt.Sprintf("%s rejected the API key. Check it in Settings.", displayName)
	case ErrForbidden:
		msg = fmt.Sprintf("%s denied access. Check the API key permissions.", displayName)
	case ErrRateLimited:
		msg = fmt.Sprintf("%s rate limit exceeded. Try again in a moment.", displayName)
	case ErrUpstreamUnavailable:
		msg = fmt.Sprintf("%s server error. Please try again.", displayName)
	case ErrMalformedResponse:
		msg = fmt.Sprintf("%s returned an unexpected response format.", displayName)
	case ErrNetworkUnavailable:
		msg = fmt.Sprintf("Could not reach %s. Check your network connection.", displayName)
	case ErrUpstreamError:
		switch {
		case detail != "":
			msg = fmt.Sprintf("%s API error: %s", displayName, detail)
		case status != 0:
			msg = fmt.Sprintf("%s API call failed. (%d)", displayName, status)
		default:
			msg = fmt.Sprintf("%s API error.", displayName)
		}
	default:
		msg = fmt.Sprintf("%s: %v", displayName, kind)
	}
	return &ProviderError{Kind: kind, Provider: displayName, Status: status, Message: msg}
}

// ClassifyStatus maps a non-success HTTP status to its error kind.
func ClassifyStatus(displayName string, status int) *ProviderError {
	switch {
	case status == http.StatusUnauthorized:
		return NewError(ErrInvalidCredential, displayName, status, "")
	case status == http.StatusForbidden:
		return NewError(ErrForbidden, displayName, status, "")
	case status == http.StatusTooManyRequests:
		return NewError(ErrRateLimited, displayName, status, "")
	case status >= http.StatusInternalServerError:
		return NewError(ErrUpstreamUnavailable, displayName, status, "")
	default:
		return NewError(ErrUpstreamError, displayName, status, "")
	}
}

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
