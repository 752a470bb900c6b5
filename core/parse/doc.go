// Package parse turns free-form model output into typed values.
//
// Language models often wrap the JSON they were asked for in prose or
// markdown fences. [ExtractCandidate] applies one heuristic: the span from
// the first '{' to the last '}', else from the first '[' to the last ']',
// else the text unchanged. [Decode] then parses that candidate strictly,
// first as an untyped value with nothing trailing it and then into the
// caller's type.
//
// The heuristic is deliberately simple. Two unrelated objects in the same
// text are spanned as one malformed candidate, and an object-looking span
// always wins over an array even when the braces belong to surrounding
// prose. Both cases fail to decode rather than being guessed at. The
// optional [WithRepair] pass hands a failing candidate to jsonrepair once.
package parse
