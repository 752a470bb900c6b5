package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Option configures Decode.
type Option func(*options)

type options struct {
	repair   bool
	onRepair func(repaired bool)
	repairer func(string) (string, error) // jsonrepair.JSONRepair when nil
}

// WithRepair lets a candidate that fails strict decoding be rewritten by
// jsonrepair and decoded once more. Off by default: repair can turn output
// the model got wrong into plausible-looking data.
func WithRepair() Option {
	return func(o *options) {
		o.repair = true
	}
}

// OnRepair registers fn to run after every repair attempt. repaired reports
// whether the rewritten candidate passed strict decoding.
func OnRepair(fn func(repaired bool)) Option {
	return func(o *options) {
		o.onRepair = fn
	}
}

// Decode strictly parses candidate into T. The candidate must hold exactly
// one JSON value with nothing but whitespace after it; the value is then
// converted into T. Failures are returned as *Error together with the zero
// value of T.
func Decode[T any](candidate string, opts ...Option) (T, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.repairer == nil {
		cfg.repairer = jsonrepair.JSONRepair
	}

	var zero T

	text := candidate
	repaired := false
	err := checkSingleValue(text)
	if err != nil && cfg.repair {
		// On a failed repair the strict error for the original candidate is kept.
		if fixed, repairErr := cfg.repairer(text); repairErr == nil && checkSingleValue(fixed) == nil {
			text, repaired, err = fixed, true, nil
		}
		if cfg.onRepair != nil {
			cfg.onRepair(repaired)
		}
	}
	if err != nil {
		return zero, &Error{Candidate: text, Err: err}
	}

	var result T
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return zero, &Error{Candidate: text, Repaired: repaired, Err: fmt.Errorf("cannot convert to %T: %w", result, err)}
	}
	return result, nil
}

// checkSingleValue decodes text into an untyped tree and rejects empty input
// and anything trailing the first value.
func checkSingleValue(text string) error {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty input")
		}
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("unexpected content after JSON value at offset %d", dec.InputOffset())
		}
		return fmt.Errorf("unexpected content after JSON value: %w", err)
	}
	return nil
}
