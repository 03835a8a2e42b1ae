package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/formats/generic"
)

// TestFetch_ConvertsHTML serves a small page and checks the Markdown
// conversion through the full generic dispatch path.
func TestFetch_ConvertsHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Title</h1><p>Some <strong>bold</strong> text.</p></body></html>`))
	}))
	defer server.Close()

	fetchTool, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call, err := generic.NewFunctionCall("web_fetch", map[string]any{"url": server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := generic.Dispatch(context.Background(), fetchTool, call)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := msg.Content[0].Text
	if !strings.Contains(text, "# Title") {
		t.Errorf("heading not converted: %q", text)
	}
	if !strings.Contains(text, "**bold**") {
		t.Errorf("emphasis not converted: %q", text)
	}
}

// TestFetch_UserAgent forwards the optional user_agent parameter.
func TestFetch_UserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<p>ok</p>"))
	}))
	defer server.Close()

	fetchTool, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = fetchTool.Invoke(context.Background(), map[string]any{
		"url":        server.URL,
		"user_agent": "custom-agent/2.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAgent != "custom-agent/2.0" {
		t.Errorf("User-Agent: got %q, want %q", gotAgent, "custom-agent/2.0")
	}
}

// TestFetch_Errors covers the empty URL and non-200 status failure modes.
func TestFetch_Errors(t *testing.T) {
	fetchTool, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("empty url", func(t *testing.T) {
		if _, err := fetchTool.Invoke(context.Background(), map[string]any{"url": "  "}); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		_, err := fetchTool.Invoke(context.Background(), map[string]any{"url": server.URL})
		if err == nil || !strings.Contains(err.Error(), "status 404") {
			t.Errorf("expected a status error, got %v", err)
		}
	})
}

// TestDefinition_Export sanity-checks the advertised metadata.
func TestDefinition_Export(t *testing.T) {
	fetchTool, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, err := generic.Definition(fetchTool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "web_fetch" {
		t.Errorf("Name: got %q, want web_fetch", def.Name)
	}
	if len(def.Parameters.Required) != 1 || def.Parameters.Required[0] != "url" {
		t.Errorf("Required: got %v, want [url]", def.Parameters.Required)
	}
	if def.Parameters.Properties["timeout_seconds"].Type != "integer" {
		t.Errorf("timeout_seconds type: got %q", def.Parameters.Properties["timeout_seconds"].Type)
	}
}
