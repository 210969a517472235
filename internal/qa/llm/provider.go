package llm

import (
	"context"
	"fmt"

	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

// Provider is one answer-synthesis strategy. Remote strategies read the
// assembled context text; the local strategy works off the raw passages.
type Provider interface {
	Name() string
	Generate(ctx context.Context, question string, contextText string, passages []qaModel.Passage) (string, error)
}

// AuthError reports a rejected or missing credential.
type AuthError struct {
	Provider string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: credential rejected: %v", e.Provider, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RequestError carries a non-success provider response and its message.
type RequestError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed (%d): %s", e.Provider, e.StatusCode, e.Message)
}

// MalformedResponseError reports a response the provider adapter could not
// convert into answer text. Parsing ambiguity is typed here once, at the
// network boundary.
type MalformedResponseError struct {
	Provider string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Provider, e.Reason)
}
