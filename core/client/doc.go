// Package client is the call surface of aitext. A [Client] wraps an
// [ai.Provider] and exposes two operations with different failure contracts:
//
//   - [Client.GenerateText] returns the trimmed model output or an error
//     ([ErrMissingCredential] or a [*GenerationError]).
//   - [GenerateJSON] never returns an error. It appends [JSONInstruction] to
//     the prompt, generates, extracts and decodes the JSON payload, and reports
//     the outcome as a [StructuredResult].
//
// The credential is passed on every call and never stored. A Client holds no
// per-call state, so one instance may serve concurrent callers.
package client
