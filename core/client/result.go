package client

import "fmt"

// StructuredResult is the outcome of GenerateJSON.
//
// When OK is true, Data is set and Error is empty. When OK is false, Error
// holds a non-empty message and Data is nil. Text carries the generated text
// whenever generation itself succeeded, including when decoding it failed.
type StructuredResult[T any] struct {
	OK    bool   `json:"ok" yaml:"ok"`
	Data  *T     `json:"data,omitempty" yaml:"data,omitempty"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

func succeeded[T any](data T, text string) StructuredResult[T] {
	return StructuredResult[T]{OK: true, Data: &data, Text: text}
}

func failed[T any](err error, text string) StructuredResult[T] {
	return StructuredResult[T]{Error: errorMessage(err), Text: text, err: err}
}

// Err returns the underlying error for failed results, nil otherwise. It lets
// callers tell failure kinds apart with errors.Is and errors.As.
func (r StructuredResult[T]) Err() error {
	return r.err
}

// Value returns the decoded data and whether the result succeeded.
func (r StructuredResult[T]) Value() (T, bool) {
	if !r.OK || r.Data == nil {
		var zero T
		return zero, false
	}
	return *r.Data, true
}

// errorMessage falls back to the error's type name when its message is empty.
func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%T", err)
}
