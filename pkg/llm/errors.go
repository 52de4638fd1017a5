package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind is the closed set of remote-provider failure classes. Every kind
// converges to the same local fallback; the distinction exists for logging
// and for the note attached to the fallback answer.
type ErrorKind string

const (
	ErrKindAuth      ErrorKind = "AUTH"
	ErrKindRateLimit ErrorKind = "RATE_LIMIT"
	ErrKindAPI       ErrorKind = "API"
	ErrKindNetwork   ErrorKind = "NETWORK"
)

// ProviderError wraps a remote-provider failure with its kind.
type ProviderError struct {
	Kind ErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(kind ErrorKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}

// Classify maps any error from a provider call to an ErrorKind. Transport
// failures and timeouts that were never tagged by a provider count as NETWORK.
func Classify(err error) ErrorKind {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrKindNetwork
	}
	return ErrKindNetwork
}

// KindFromStatus maps an HTTP status from a chat-completion API to an ErrorKind.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return ErrKindAuth
	case status == 429:
		return ErrKindRateLimit
	default:
		return ErrKindAPI
	}
}
