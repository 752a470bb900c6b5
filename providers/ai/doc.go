// Package ai defines the provider-agnostic request and response types shared
// by aitext's generation backends. Each provider maps [ChatRequest] to its own
// wire format and returns a [ChatResponse]; the [Provider] interface is the
// only contract the client layer depends on.
package ai
