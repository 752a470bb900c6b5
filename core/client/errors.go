package client

import (
	"errors"
	"fmt"

	"github.com/leofalp/aitext/providers/ai"
)

// ErrMissingCredential is returned before any network call when the
// credential is empty or only whitespace.
var ErrMissingCredential = errors.New("aitext: missing API credential")

// GenerationError wraps a provider or transport failure. Use errors.As to
// inspect it and errors.Unwrap (or errors.Is) to reach the cause.
type GenerationError struct {
	Model ai.Model // requested model; empty means the provider default
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("text generation failed: %v", e.Err)
	}
	return fmt.Sprintf("text generation failed (model %s): %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
