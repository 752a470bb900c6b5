package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/leofalp/aitext/core/parse"
	"github.com/leofalp/aitext/providers/observability"
)

// JSONInstruction is appended to every GenerateJSON prompt.
const JSONInstruction = "\n\nReturn ONLY valid JSON. Do not wrap it in markdown code fences and do not add any explanation."

// GenerateJSON asks the model for JSON and decodes the answer into T. It never
// returns an error or panics: every failure (missing credential, generation
// error, undecodable output) is reported through the result's OK and Error
// fields, with the cause available from Err.
//
// Decoding is a single best-effort pass: the first '{' to the last '}' (or
// '[' to ']') is taken as the payload and parsed strictly. No retries.
//
//	type Review struct {
//	    Rating  int    `json:"rating"`
//	    Summary string `json:"summary"`
//	}
//	res := client.GenerateJSON[Review](ctx, c, key, "Rate this review: ...")
//	if !res.OK {
//	    log.Println(res.Error)
//	}
func GenerateJSON[T any](ctx context.Context, c *Client, credential, prompt string, opts ...GenerateOption) (result StructuredResult[T]) {
	if c == nil {
		return failed[T](errors.New("client is nil"), "")
	}

	var text string
	defer func() {
		if r := recover(); r != nil {
			result = failed[T](fmt.Errorf("panic during JSON generation: %v", r), text)
		}
	}()

	cfg := c.callOptions(opts)
	observer := c.options.Observer

	var span observability.Span
	if observer != nil {
		ctx = observability.ContextWithObserver(ctx, observer)
		ctx, span = observer.StartSpan(ctx, observability.SpanGenerateJSON,
			observability.Bool(observability.AttrRepairEnabled, cfg.repair),
		)
		if span != nil {
			defer span.End()
		}
	}

	text, err := c.generateText(ctx, credential, prompt+JSONInstruction, cfg)
	if err != nil {
		if span != nil {
			span.SetStatus(observability.StatusError, err.Error())
		}
		return failed[T](err, "")
	}

	candidate, form := parse.ExtractCandidate(text)
	if span != nil {
		span.AddEvent(observability.EventCandidateChosen,
			observability.String(observability.AttrCandidateForm, string(form)),
			observability.Int(observability.AttrCandidateLength, len(candidate)),
		)
	}

	var decodeOpts []parse.Option
	if cfg.repair {
		decodeOpts = append(decodeOpts, parse.WithRepair())
		if span != nil {
			decodeOpts = append(decodeOpts, parse.OnRepair(func(repaired bool) {
				span.AddEvent(observability.EventRepairAttempted,
					observability.Bool(observability.AttrRepairSucceeded, repaired),
				)
			}))
		}
	}

	data, err := parse.Decode[T](candidate, decodeOpts...)
	if err != nil {
		if observer != nil {
			observer.Counter(observability.MetricParseFailures).Add(ctx, 1,
				observability.String(observability.AttrCandidateForm, string(form)),
			)
			observer.Debug(ctx, "model output is not valid JSON", observability.Error(err))
		}
		if span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "decode failed")
		}
		return failed[T](err, text)
	}

	if span != nil {
		span.SetStatus(observability.StatusOK, "")
	}
	return succeeded(data, text)
}
