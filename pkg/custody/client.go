package custody

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

// Client talks to the custody backend over its REST API.
type Client struct {
	apiURL     string
	httpClient *http.Client
	tokens     *tokenSource
	headers    map[string]string
}

// NewClient creates a new Client from the given configuration.
func NewClient(config Config) (*Client, error) {
	authURL, err := normalizeServiceURL("auth URL", config.AuthURL)
	if err != nil {
		return nil, err
	}
	apiURL, err := normalizeServiceURL("API URL", config.APIURL)
	if err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	tokens, err := newTokenSource(authURL, config, httpClient)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		apiURL:     apiURL,
		httpClient: httpClient,
		tokens:     tokens,
		headers:    headers,
	}, nil
}

// APIURL returns the normalized backend base URL.
func (c *Client) APIURL() string {
	return c.apiURL
}

func (c *Client) resolveURL(path string, query url.Values) string {
	endpoint := c.apiURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}
	return endpoint
}

// doJSON issues an authenticated request and returns the raw response
// body. The backend may reply brotli-compressed; that is decoded here so
// callers always see plain JSON.
func (c *Client) doJSON(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	payload any,
) (json.RawMessage, error) {
	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.resolveURL(path, query), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "br")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	token, err := c.tokens.bearer(ctx)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("custody API request failed: %w", err)
	}
	defer response.Body.Close()

	reader := io.Reader(response.Body)
	if strings.EqualFold(response.Header.Get("Content-Encoding"), "br") {
		reader = brotli.NewReader(response.Body)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read custody API response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: response.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return json.RawMessage(body), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, path, nil, payload)
}
