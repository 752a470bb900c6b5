package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/aitext/core/client"
	"github.com/leofalp/aitext/internal/utils"
	"github.com/leofalp/aitext/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs the model name, duration and token counts.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the prompt length and finish reason.
	LogLevelStandard

	// LogLevelVerbose adds the prompt and response text, each truncated to
	// 500 characters.
	//
	// WARNING: do not use in production. Prompts and responses may contain
	// sensitive user data.
	LogLevelVerbose
)

const truncateLen = 500

// NewLoggingMiddleware logs every provider call through logger. The request
// credential is never logged. logger must not be nil; use slog.Default() if
// no custom logger is configured.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "llm send", buildRequestAttrs(request, level)...)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", string(request.Model)),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm send completed", buildResponseAttrs(response, elapsed, level)...)
			return response, nil
		}
	}
}

func buildRequestAttrs(request ai.ChatRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", string(request.Model)),
	}

	if level >= LogLevelStandard {
		promptLen := 0
		for _, msg := range request.Messages {
			promptLen += len(msg.Content)
		}
		attrs = append(attrs, slog.Int("prompt_length", promptLen))
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		last := request.Messages[len(request.Messages)-1]
		attrs = append(attrs, slog.String("prompt", utils.TruncateString(last.Content, truncateLen)))
	}

	return attrs
}

func buildResponseAttrs(response *ai.ChatResponse, elapsed time.Duration, level LogLevel) []any {
	if response == nil {
		return []any{slog.Duration("duration", elapsed)}
	}

	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard && response.FinishReason != "" {
		attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
	}

	if level >= LogLevelVerbose && response.Content != "" {
		attrs = append(attrs, slog.String("response_content", utils.TruncateString(response.Content, truncateLen)))
	}

	return attrs
}
