package client

import (
	"github.com/leofalp/aitext/providers/ai"
	"github.com/leofalp/aitext/providers/observability"
)

// ClientOptions holds construction-time settings. Use the With* functions.
type ClientOptions struct {
	Observer         observability.Provider
	Middlewares      []Middleware
	SystemPrompt     string
	DefaultModel     ai.Model
	GenerationConfig *ai.GenerationConfig
}

// WithObserver enables spans, metrics and logs for every call.
func WithObserver(observer observability.Provider) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Observer = observer
	}
}

// WithMiddleware appends middlewares around the provider call. The first one
// given is the outermost.
func WithMiddleware(middlewares ...Middleware) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// WithSystemPrompt sets a system prompt sent with every request.
func WithSystemPrompt(prompt string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.SystemPrompt = prompt
	}
}

// WithDefaultModel sets the model used when a call does not pick one.
func WithDefaultModel(model ai.Model) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.DefaultModel = model
	}
}

// WithDefaultGenerationConfig sets sampling parameters for every request.
func WithDefaultGenerationConfig(cfg ai.GenerationConfig) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.GenerationConfig = &cfg
	}
}

// GenerateOption customizes a single GenerateText or GenerateJSON call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	model            ai.Model
	generationConfig *ai.GenerationConfig
	repair           bool
}

// WithModel selects the model for this call.
func WithModel(model ai.Model) GenerateOption {
	return func(o *generateOptions) {
		o.model = model
	}
}

// WithGenerationConfig overrides the client's sampling parameters for this call.
func WithGenerationConfig(cfg ai.GenerationConfig) GenerateOption {
	return func(o *generateOptions) {
		o.generationConfig = &cfg
	}
}

// WithRepair allows GenerateJSON to run the candidate through jsonrepair when
// strict decoding fails. Ignored by GenerateText.
func WithRepair() GenerateOption {
	return func(o *generateOptions) {
		o.repair = true
	}
}
