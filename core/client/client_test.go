package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/leofalp/aitext/providers/ai"
)

// mockProvider is a mock implementation of ai.Provider for testing
type mockProvider struct {
	calls           atomic.Int32
	sendMessageFunc func(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error)
}

func (m *mockProvider) SendMessage(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	m.calls.Add(1)
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, req)
	}
	return &ai.ChatResponse{
		Id:           "test-id",
		Model:        "test-model",
		Content:      "test response",
		FinishReason: ai.FinishReasonStop,
	}, nil
}

func (m *mockProvider) WithAPIKey(_ string) ai.Provider           { return m }
func (m *mockProvider) WithBaseURL(_ string) ai.Provider          { return m }
func (m *mockProvider) WithHttpClient(_ *http.Client) ai.Provider { return m }

// replyWith returns a provider that always answers with content.
func replyWith(content string) *mockProvider {
	return &mockProvider{
		sendMessageFunc: func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
			return &ai.ChatResponse{Content: content, FinishReason: ai.FinishReasonStop}, nil
		},
	}
}

func mustNew(t *testing.T, provider ai.Provider, opts ...func(*ClientOptions)) *Client {
	t.Helper()
	c, err := New(provider, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNew_NilProvider(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestGenerateText_TrimsWhitespace(t *testing.T) {
	tests := []string{
		"  hello  ",
		"\n\thello\r\n",
		"hello",
		" hello ",
	}

	for _, raw := range tests {
		c := mustNew(t, replyWith(raw))
		got, err := c.GenerateText(context.Background(), "key", "prompt")
		if err != nil {
			t.Fatalf("GenerateText(%q) failed: %v", raw, err)
		}
		if got != "hello" {
			t.Errorf("GenerateText with reply %q = %q, want %q", raw, got, "hello")
		}
		if strings.TrimSpace(got) != got {
			t.Errorf("result %q has surrounding whitespace", got)
		}
	}
}

func TestGenerateText_MissingCredential(t *testing.T) {
	for _, credential := range []string{"", "   ", "\n"} {
		provider := &mockProvider{}
		c := mustNew(t, provider)

		_, err := c.GenerateText(context.Background(), credential, "prompt")
		if !errors.Is(err, ErrMissingCredential) {
			t.Errorf("credential %q: expected ErrMissingCredential, got %v", credential, err)
		}
		if provider.calls.Load() != 0 {
			t.Errorf("credential %q: provider must not be called, got %d calls", credential, provider.calls.Load())
		}
	}
}

func TestGenerateText_GenerationError(t *testing.T) {
	cause := errors.New("connection refused")
	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
			return nil, cause
		},
	})

	_, err := c.GenerateText(context.Background(), "key", "prompt", WithModel("gemini-2.5-pro"))

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
	}
	if !errors.Is(err, cause) {
		t.Error("GenerationError should unwrap to the provider error")
	}
	if genErr.Model != "gemini-2.5-pro" {
		t.Errorf("expected model on error, got %q", genErr.Model)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGenerateText_NilResponse(t *testing.T) {
	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
			return nil, nil
		},
	})

	_, err := c.GenerateText(context.Background(), "key", "prompt")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError for nil response, got %v", err)
	}
}

func TestGenerateText_BuildsRequest(t *testing.T) {
	var got ai.ChatRequest
	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(_ context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
			got = req
			return &ai.ChatResponse{Content: "ok"}, nil
		},
	},
		WithSystemPrompt("system"),
		WithDefaultModel("gemini-2.0-flash"),
		WithDefaultGenerationConfig(ai.GenerationConfig{Temperature: 0.2}),
	)

	if _, err := c.GenerateText(context.Background(), "cred", "the prompt"); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if got.APIKey != "cred" {
		t.Errorf("APIKey = %q, want cred", got.APIKey)
	}
	if got.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want client default", got.Model)
	}
	if got.SystemPrompt != "system" {
		t.Errorf("SystemPrompt = %q", got.SystemPrompt)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != ai.RoleUser || got.Messages[0].Content != "the prompt" {
		t.Errorf("unexpected messages %+v", got.Messages)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.Temperature != 0.2 {
		t.Errorf("unexpected generation config %+v", got.GenerationConfig)
	}

	if _, err := c.GenerateText(context.Background(), "cred", "p",
		WithModel("gemini-2.5-flash"),
		WithGenerationConfig(ai.GenerationConfig{MaxOutputTokens: 10}),
	); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if got.Model != "gemini-2.5-flash" {
		t.Errorf("per-call model should override default, got %q", got.Model)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.MaxOutputTokens != 10 || got.GenerationConfig.Temperature != 0 {
		t.Errorf("per-call generation config should replace default, got %+v", got.GenerationConfig)
	}
}

func TestGenerateText_EmptyModelLeftToProvider(t *testing.T) {
	var got ai.Model = "unset"
	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(_ context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
			got = req.Model
			return &ai.ChatResponse{Content: "ok"}, nil
		},
	})

	if _, err := c.GenerateText(context.Background(), "cred", "p"); err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty model so the provider default applies, got %q", got)
	}
}

func TestGenerateText_ContextPassedThrough(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
			return nil, ctx.Err()
		},
	})

	_, err := c.GenerateText(ctx, "cred", "p")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled through the chain, got %v", err)
	}
}

func TestGenerateText_Concurrent(t *testing.T) {
	c := mustNew(t, &mockProvider{
		sendMessageFunc: func(_ context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
			return &ai.ChatResponse{Content: " " + req.APIKey + ":" + req.Messages[0].Content + " "}, nil
		},
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			got, err := c.GenerateText(context.Background(), key, "p")
			if err != nil {
				t.Errorf("call %d failed: %v", i, err)
				return
			}
			if got != key+":p" {
				t.Errorf("call %d got %q, want %q", i, got, key+":p")
			}
		}(i)
	}
	wg.Wait()
}
