package client

import (
	"context"

	"github.com/leofalp/aitext/providers/ai"
)

// SendFunc sends a chat request to the provider and returns the completed
// response. It is the unit threaded through the middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts provider calls. It receives the next SendFunc and
// returns one that wraps it.
type Middleware func(next SendFunc) SendFunc

// buildSendChain applies middlewares in reverse so that middlewares[0] is the
// outermost wrapper and the provider call is innermost.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = provider.SendMessage

	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			chain = middlewares[i](chain)
		}
	}

	return chain
}
