// Package net fetches page markup over HTTP.
package net

import (
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

// Client issues the GET requests the browser needs. It wraps a standard
// http client with a fixed timeout so a dead server cannot hang a page
// load forever.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Get fetches the resource at host:port/path and returns the body as a
// string. Non-2xx responses and bodies that are not valid UTF-8 are errors.
func (c *Client) Get(host, port, path string) (string, error) {
	target := fmt.Sprintf("http://%s:%s/%s", host, port, path)
	resp, err := c.httpClient.Get(target)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: unexpected status %s", target, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body of %s: %w", target, err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("body of %s is not valid UTF-8", target)
	}
	return string(body), nil
}
