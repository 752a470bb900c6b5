package parse

import (
	"errors"
	"fmt"

	"github.com/leofalp/aitext/internal/utils"
)

// ErrInvalidJSON matches every *Error via errors.Is.
var ErrInvalidJSON = errors.New("invalid JSON candidate")

// candidatePreviewLen bounds how much of the candidate is echoed in messages.
const candidatePreviewLen = 200

// Error reports a candidate that could not be decoded, either because it is
// not a single well-formed JSON value or because it does not fit the
// requested type.
type Error struct {
	Candidate string // the text that was decoded, after repair if one was applied
	Repaired  bool   // jsonrepair rewrote the candidate before the final attempt
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to parse JSON from model output: %v (candidate: %q)",
		e.Err, utils.TruncateString(e.Candidate, candidatePreviewLen))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidJSON
}
