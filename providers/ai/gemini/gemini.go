package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/leofalp/aitext/internal/utils"
	"github.com/leofalp/aitext/providers/ai"
	"github.com/leofalp/aitext/providers/observability"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	// ErrMissingAPIKey is returned when neither the request nor the provider carries a key.
	ErrMissingAPIKey = errors.New("gemini: API key is not set")

	// ErrNoCandidates is returned when the API answers without any candidate,
	// typically because the prompt was blocked.
	ErrNoCandidates = errors.New("gemini: response contains no candidates")
)

// GeminiProvider implements ai.Provider for Google's Gemini API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a Gemini provider with defaults from the environment:
//   - GEMINI_API_KEY: default API key, used when a request has none
//   - GEMINI_API_BASE_URL: base URL (optional, defaults to Google's API)
func New() *GeminiProvider {
	baseURL := os.Getenv("GEMINI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &GeminiProvider{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the default API key for the provider.
func (p *GeminiProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *GeminiProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *GeminiProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage calls models/{model}:generateContent and converts the first
// candidate into an ai.ChatResponse. A credential on the request takes
// precedence over the provider's default key.
func (p *GeminiProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	model := request.Model
	if model == "" {
		model = DefaultModel
	}

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "gemini"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, string(model)),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Gemini provider preparing request",
			observability.String(observability.AttrLLMModel, string(model)),
			observability.Bool("known_model", IsKnown(model)),
		)
	}

	apiKey := request.APIKey
	if apiKey == "" {
		apiKey = p.apiKey
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, url.PathEscape(string(model)))

	httpResponse, resp, err := utils.DoPostSync[generateContentResponse](
		ctx,
		p.client,
		endpoint,
		"", // Gemini authenticates with x-goog-api-key, not Bearer
		requestToGemini(request),
		utils.HeaderOption{Key: "x-goog-api-key", Value: apiKey},
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from Gemini API: %s", httpResponse.Status)
	}

	result := geminiToGeneric(*resp)
	if result.Model == "" {
		result.Model = string(model)
	}

	if len(resp.Candidates) == 0 {
		if result.Refusal != "" {
			return nil, fmt.Errorf("%w: prompt blocked (%s)", ErrNoCandidates, result.Refusal)
		}
		return nil, ErrNoCandidates
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, result.Id),
			observability.String(observability.AttrLLMFinishReason, result.FinishReason),
			observability.Int(observability.AttrHTTPStatusCode, httpResponse.StatusCode),
		)
		if result.Usage != nil {
			span.AddEvent(observability.EventTokensReceived,
				observability.Int(observability.AttrLLMTokensTotal, result.Usage.TotalTokens),
			)
		}
	}

	return result, nil
}
