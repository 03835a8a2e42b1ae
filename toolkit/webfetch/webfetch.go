package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/internal/utils"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "oci-gen-ai-tool-decorators-webfetch/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
)

// New returns a tool that fetches a web page and converts its HTML content
// to Markdown. The URL parameter is required; the request timeout and
// User-Agent can be overridden per call. The converted page is reported
// under the "markdown" output label.
//
// Example:
//
//	fetch, _ := webfetch.New()
//	msg, _ := generic.Dispatch(ctx, fetch, call)
func New() (*tool.Tool, error) {
	return tool.New(
		fetch,
		"Fetches a web page and converts its HTML content to Markdown format. Supports HTTP and HTTPS protocols. Automatically handles partial URLs by adding https:// prefix.",
		tool.WithName("web_fetch"),
		tool.WithOutputLabel("markdown"),
		tool.WithParameter("url", tool.KindString, "The URL of the page to fetch. Partial URLs like example.com are allowed."),
		tool.WithOptionalParameter("timeout_seconds", tool.KindInteger, "Request timeout in seconds. Defaults to 30."),
		tool.WithOptionalParameter("user_agent", tool.KindString, "User-Agent header to send with the request."),
	)
}

// fetch retrieves the page at args["url"] and returns its content as
// Markdown. Partial URLs are normalised by prepending "https://"; the body
// is capped at [MaxBodySize] bytes and a non-200 status is an error.
func fetch(ctx context.Context, args map[string]any) (any, error) {
	url, _ := args["url"].(string)
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if seconds, ok := args["timeout_seconds"].(int64); ok && seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	userAgent := DefaultUserAgent
	if ua, ok := args["user_agent"].(string); ok && ua != "" {
		userAgent = ua
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer utils.CloseQuietly(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return markdown, nil
}

// httpClient is package-level so tests can swap the transport.
var httpClient = &http.Client{Timeout: DefaultTimeout}
