package nexusdb

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// HTTPClient is the interface for HTTP client.
type HTTPClient interface {
	// Post sends a POST request to the NexusDB server.
	Post(context.Context, *url.URL, map[string]string, []byte) (*http.Response, error)
	// Close releases idle connections held by the client.
	Close()
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient creates a new internal HTTP client.
func NewHTTPClient() HTTPClient {
	return &httpClient{
		client: http.DefaultClient,
	}
}

// Ensure httpClient implements HTTPClient.
var _ HTTPClient = (*httpClient)(nil)

func (c *httpClient) Post(ctx context.Context, u *url.URL, headers map[string]string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}

// Client is a NexusDB client. It holds only static configuration and is safe
// for concurrent use.
type Client struct {
	config *Config
	http   HTTPClient
	logger zerolog.Logger
}

// NewClient creates a new client with the given config.
func NewClient(config *Config) *Client {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	return &Client{
		config: config,
		http:   NewHTTPClient(),
		logger: logger,
	}
}

// Close closes the client.
//
// You don't typically need to call this as the garbage collector will release
// the resources when the client is no longer referenced. However, it can be
// useful to call this if you want to release the resources immediately.
func (c *Client) Close() {
	c.http.Close()
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"API-Key":      c.config.APIKey,
	}
}
