package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Load reads and decodes a content document from a local file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Fetch retrieves the content document from a URL with a single GET.
// A non-2xx status is an error; the body is not inspected. No retries.
func Fetch(ctx context.Context, client *http.Client, url string) (*Document, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching content document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching content document: unexpected status %s", resp.Status)
	}

	return Decode(resp.Body)
}

// Open loads the content document from source, which may be an http(s) URL
// or a local file path.
func Open(ctx context.Context, client *http.Client, source string) (*Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, client, source)
	}
	return Load(source)
}

// Decode parses a content document from r. Unknown fields are ignored;
// no schema validation is performed beyond JSON well-formedness.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing content document: %w", err)
	}
	return &doc, nil
}
