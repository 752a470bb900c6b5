package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leofalp/aitext/core/client"
)

// newGeminiServer answers every generateContent call with reply and records
// the requested path.
func newGeminiServer(t *testing.T, reply string, paths *[]string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if paths != nil {
			*paths = append(*paths, r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "cli-key" {
			t.Errorf("x-goog-api-key = %q", got)
		}
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": reply}}},
				"finishReason": "STOP",
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)

	t.Setenv("GEMINI_API_BASE_URL", server.URL)
	t.Setenv("GEMINI_API_KEY", "cli-key")
	t.Setenv("AITEXT_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_Text(t *testing.T) {
	var paths []string
	newGeminiServer(t, "  Paris  \n", &paths)

	out, _, err := execute(t, "What", "is", "the", "capital", "of", "France?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Paris\n" {
		t.Errorf("stdout = %q, want %q", out, "Paris\n")
	}
	if len(paths) != 1 || !strings.Contains(paths[0], "gemini-2.0-flash-lite:generateContent") {
		t.Errorf("expected default model in path, got %v", paths)
	}
}

func TestRoot_ModelFlag(t *testing.T) {
	var paths []string
	newGeminiServer(t, "ok", &paths)

	if _, _, err := execute(t, "--model", "gemini-2.5-pro", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || !strings.Contains(paths[0], "gemini-2.5-pro:generateContent") {
		t.Errorf("expected gemini-2.5-pro in path, got %v", paths)
	}
}

func TestRoot_JSON(t *testing.T) {
	newGeminiServer(t, "Sure:\n```json\n{\"x\":true}\n```", nil)

	out, _, err := execute(t, "--json", "give me x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, out)
	}
	if !result.OK || result.Data["x"] != true {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestRoot_JSONAsYAML(t *testing.T) {
	newGeminiServer(t, `[1,2,3]`, nil)

	out, _, err := execute(t, "--json", "-o", "yaml", "numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"ok: true", "data:", "- 1", "- 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml output missing %q:\n%s", want, out)
		}
	}
}

func TestRoot_JSONFailure(t *testing.T) {
	newGeminiServer(t, "no json here", nil)

	out, _, err := execute(t, "--json", "anything")
	if !errors.Is(err, errResultNotOK) {
		t.Fatalf("expected errResultNotOK, got %v", err)
	}
	if !strings.Contains(out, `"ok": false`) || !strings.Contains(out, `"text": "no json here"`) {
		t.Errorf("failed result should still be printed, got:\n%s", out)
	}
}

func TestRoot_Repair(t *testing.T) {
	newGeminiServer(t, `{name: 'John'}`, nil)

	if _, _, err := execute(t, "--json", "who"); !errors.Is(err, errResultNotOK) {
		t.Fatalf("strict mode should fail, got %v", err)
	}
	if _, _, err := execute(t, "--json", "--repair", "who"); err != nil {
		t.Fatalf("repair should succeed, got %v", err)
	}
}

func TestRoot_MissingCredential(t *testing.T) {
	var paths []string
	newGeminiServer(t, "unused", &paths)
	t.Setenv("GEMINI_API_KEY", "")

	_, _, err := execute(t, "hello")
	if !errors.Is(err, client.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("no request should be sent, got %v", paths)
	}
}

func TestRoot_InvalidFlags(t *testing.T) {
	newGeminiServer(t, "unused", nil)

	tests := []struct {
		name string
		args []string
	}{
		{"no prompt", []string{}},
		{"bad output format", []string{"--json", "-o", "xml", "hi"}},
		{"bad log level", []string{"--log-level", "loud", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoot_UnknownModelWarns(t *testing.T) {
	newGeminiServer(t, "ok", nil)

	_, stderr, err := execute(t, "--model", "gemini-9-ultra", "hi")
	if err != nil {
		t.Fatalf("unknown models are forwarded, got %v", err)
	}
	if !strings.Contains(stderr, "unknown model") {
		t.Errorf("expected a warning on stderr, got %q", stderr)
	}
	if strings.Contains(stderr, "cli-key") {
		t.Error("credential leaked into logs")
	}
}

func TestWriteResult_Formats(t *testing.T) {
	for _, in := range []string{"json", "JSON", "yaml", "yml"} {
		if _, err := parseOutputFormat(in); err != nil {
			t.Errorf("parseOutputFormat(%q) failed: %v", in, err)
		}
	}

	var buf bytes.Buffer
	if err := writeResult(io.Writer(&buf), formatYAML, map[string]int{"a": 1}); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}
	if buf.String() != "a: 1\n" {
		t.Errorf("got %q", buf.String())
	}
}
