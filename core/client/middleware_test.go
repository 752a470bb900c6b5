package client

import (
	"context"
	"reflect"
	"testing"

	"github.com/leofalp/aitext/providers/ai"
)

func recordingMiddleware(name string, order *[]string) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			*order = append(*order, name+":before")
			resp, err := next(ctx, request)
			*order = append(*order, name+":after")
			return resp, err
		}
	}
}

func TestBuildSendChain_Order(t *testing.T) {
	var order []string
	provider := &mockProvider{
		sendMessageFunc: func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
			order = append(order, "provider")
			return &ai.ChatResponse{Content: "ok"}, nil
		},
	}

	c := mustNew(t, provider, WithMiddleware(
		recordingMiddleware("outer", &order),
		nil,
		recordingMiddleware("inner", &order),
	))

	if _, err := c.GenerateText(context.Background(), "key", "prompt"); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	want := []string{"outer:before", "inner:before", "provider", "inner:after", "outer:after"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestMiddleware_CanRewriteResponse(t *testing.T) {
	rewrite := func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			resp, err := next(ctx, request)
			if err != nil {
				return nil, err
			}
			resp.Content = "  rewritten  "
			return resp, nil
		}
	}

	c := mustNew(t, replyWith("original"), WithMiddleware(rewrite))
	got, err := c.GenerateText(context.Background(), "key", "prompt")
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if got != "rewritten" {
		t.Errorf("got %q, want %q", got, "rewritten")
	}
}

func TestMiddleware_NotCalledWithoutCredential(t *testing.T) {
	var order []string
	c := mustNew(t, &mockProvider{}, WithMiddleware(recordingMiddleware("mw", &order)))

	if _, err := c.GenerateText(context.Background(), " ", "prompt"); err == nil {
		t.Fatal("expected error")
	}
	if len(order) != 0 {
		t.Errorf("middleware ran for a rejected call: %v", order)
	}
}
