package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/leofalp/aitext/providers/ai"
	"github.com/leofalp/aitext/providers/observability"
)

// Client issues generation requests through a provider. It is immutable after
// New and safe for concurrent use.
type Client struct {
	provider ai.Provider
	send     SendFunc
	options  ClientOptions
}

// New builds a Client around provider.
//
//	c, err := client.New(gemini.New(),
//	    client.WithObserver(slogobs.New()),
//	    client.WithMiddleware(middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard)),
//	)
func New(provider ai.Provider, opts ...func(*ClientOptions)) (*Client, error) {
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}

	var options ClientOptions
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		provider: provider,
		send:     buildSendChain(provider, options.Middlewares),
		options:  options,
	}, nil
}

// Provider returns the wrapped provider.
func (c *Client) Provider() ai.Provider {
	return c.provider
}

// GenerateText sends prompt to the model and returns the response with
// leading and trailing whitespace removed.
//
// It fails with ErrMissingCredential when credential is blank, before any
// network activity, and with a *GenerationError when the provider call fails.
// There are no retries; cancellation and deadlines come from ctx.
func (c *Client) GenerateText(ctx context.Context, credential, prompt string, opts ...GenerateOption) (string, error) {
	return c.generateText(ctx, credential, prompt, c.callOptions(opts))
}

func (c *Client) callOptions(opts []GenerateOption) generateOptions {
	cfg := generateOptions{
		model:            c.options.DefaultModel,
		generationConfig: c.options.GenerationConfig,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *Client) generateText(ctx context.Context, credential, prompt string, cfg generateOptions) (text string, err error) {
	observer := c.options.Observer
	var span observability.Span

	if observer != nil {
		ctx = observability.ContextWithObserver(ctx, observer)
		ctx, span = observer.StartSpan(ctx, observability.SpanGenerateText,
			observability.String(observability.AttrLLMModel, string(cfg.model)),
			observability.Int(observability.AttrPromptLength, len(prompt)),
		)
		defer func() {
			if err != nil {
				observer.Counter(observability.MetricGenerationErrors).Add(ctx, 1)
			}
			if span == nil {
				return
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, err.Error())
			} else {
				span.SetAttributes(observability.Int(observability.AttrResponseLength, len(text)))
				span.SetStatus(observability.StatusOK, "")
			}
			span.End()
		}()
	}

	if strings.TrimSpace(credential) == "" {
		return "", ErrMissingCredential
	}

	request := ai.ChatRequest{
		Model:            cfg.model,
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		SystemPrompt:     c.options.SystemPrompt,
		GenerationConfig: cfg.generationConfig,
		APIKey:           credential,
	}

	start := time.Now()
	response, err := c.send(ctx, request)
	elapsed := time.Since(start)

	if observer != nil {
		observer.Counter(observability.MetricGenerations).Add(ctx, 1,
			observability.String(observability.AttrLLMModel, string(cfg.model)),
		)
		observer.Histogram(observability.MetricGenerationDuration).Record(ctx, float64(elapsed.Milliseconds()))
	}

	if err != nil {
		return "", &GenerationError{Model: cfg.model, Err: err}
	}
	if response == nil {
		return "", &GenerationError{Model: cfg.model, Err: errors.New("provider returned no response")}
	}

	return strings.TrimSpace(response.Content), nil
}
