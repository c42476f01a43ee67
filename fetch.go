package cvdash

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// maxDocumentSize bounds a fetched resume.
const maxDocumentSize = 4 << 20

// FetchRequest configures Fetch.
type FetchRequest struct {
	URL    string
	Client *http.Client
}

// Fetch downloads and parses a resume document over HTTP(S). A relative
// photo path in a fetched document resolves against the working directory.
func Fetch(ctx context.Context, req FetchRequest) (*Document, error) {
	raw, err := FetchRaw(ctx, req)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(raw, "")
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", req.URL)
	}
	return doc, nil
}

// FetchRaw downloads a resume document without parsing it.
func FetchRaw(ctx context.Context, req FetchRequest) ([]byte, error) {
	if req.URL == "" {
		return nil, errors.New("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch: build request")
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, errors.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "application/json")
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "fetch: request")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetch: status %s", resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "fetch: read body")
	}
	if len(raw) > maxDocumentSize {
		return nil, errors.Errorf("fetch: document exceeds %d bytes", maxDocumentSize)
	}
	return raw, nil
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
