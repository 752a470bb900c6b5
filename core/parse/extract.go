package parse

import "strings"

// Form records which bracket pair produced a candidate.
type Form string

const (
	FormObject Form = "object"
	FormArray  Form = "array"
	FormNone   Form = "none" // no bracket pair; the whole text is the candidate
)

// ExtractCandidate returns the substring most likely to hold the JSON payload
// of text. Object form is tried first and always wins when it matches.
//
//	ExtractCandidate("Sure!\n```json\n{\"x\":true}\n```") // `{"x":true}`, FormObject
//	ExtractCandidate("[1,2,3]")                          // "[1,2,3]", FormArray
//	ExtractCandidate("no json here")                     // "no json here", FormNone
func ExtractCandidate(text string) (string, Form) {
	if candidate, ok := span(text, '{', '}'); ok {
		return candidate, FormObject
	}
	if candidate, ok := span(text, '[', ']'); ok {
		return candidate, FormArray
	}
	return text, FormNone
}

// span returns text[first open : last close+1] when both exist in that order.
func span(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
