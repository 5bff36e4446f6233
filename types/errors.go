package types

import (
	"errors"
	"fmt"
)

// Validation rejections carry fixed user-facing messages. Handlers and
// the chat UI render these verbatim.
var (
	ErrNoQuestion  = errors.New("no question provided")
	ErrNoDocuments = errors.New("Please upload a document first.")
)

// ExtractionError reports a single document that could not be turned
// into text. It never fails a whole upload batch.
type ExtractionError struct {
	Name string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Name, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ProviderError wraps any failure of the upstream answer provider:
// network, auth, quota or a malformed response.
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("answer provider: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("answer provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
