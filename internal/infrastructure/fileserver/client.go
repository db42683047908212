// Package fileserver talks to the local file server that backs the editor.
package fileserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/crumbtrail/internal/application/port"
	"github.com/bnema/crumbtrail/internal/domain/entity"
	"github.com/bnema/crumbtrail/internal/logging"
)

const (
	// DefaultBaseURL is where the file server listens by default.
	DefaultBaseURL = "http://localhost:7261"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 2 * time.Second

	// statusNoContentIE is how some clients report 204.
	statusNoContentIE = 1223

	maxListingSize = 4 << 20
)

// ErrUnexpectedStatus is returned when a listing request does not answer 200.
var ErrUnexpectedStatus = errors.New("unexpected file server status")

// Client implements port.FileInfo over the file server's HTTP API:
//
//	GET /get?file=<path>      204 means the file is binary
//	GET /fs_list/<dir>        {"children": [{"name", "directory", "Location"}]}
type Client struct {
	baseURL string
	client  *http.Client
}

var _ port.FileInfo = (*Client)(nil)

// NewClient creates a client for baseURL. Empty values fall back to defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// IsBinary asks the server whether filePath can be opened as text.
func (c *Client) IsBinary(ctx context.Context, filePath string) (bool, error) {
	endpoint := c.baseURL + "/get?" + url.Values{"file": {filePath}}.Encode()

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	binary := resp.StatusCode == http.StatusNoContent || resp.StatusCode == statusNoContentIE
	logging.FromContext(ctx).Debug().
		Str("file", filePath).
		Int("status", resp.StatusCode).
		Bool("binary", binary).
		Msg("binary check")
	return binary, nil
}

type listing struct {
	Children []entity.FileEntry `json:"children"`
}

// ListChildren returns the entries of dirPath.
func (c *Client) ListChildren(ctx context.Context, dirPath string) ([]entity.FileEntry, error) {
	endpoint := c.baseURL + "/fs_list" + (&url.URL{Path: "/" + strings.TrimLeft(dirPath, "/")}).EscapedPath()

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: listing %s: %d", ErrUnexpectedStatus, dirPath, resp.StatusCode)
	}

	var out listing
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxListingSize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode listing of %s: %w", dirPath, err)
	}
	if out.Children == nil {
		return []entity.FileEntry{}, nil
	}
	return out.Children, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("file server request failed: %w", err)
	}
	return resp, nil
}
