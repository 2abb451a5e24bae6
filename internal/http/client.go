// Package http implements the request dispatcher for the servicing API: URL
// resolution against a configured base, header assembly, JSON body encoding,
// and the single synchronous HTTP exchange behind every client operation.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// Client dispatches requests to the servicing API. It holds only
// immutable-after-construction configuration, so one instance may be shared
// across goroutines.
type Client struct {
	baseURL    *url.URL
	token      string
	headers    map[string]string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     servicing.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithHeaders sets default headers attached to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithTLSConfig overrides certificate trust on the underlying transport.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: tlsConfig,
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to install a
// custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug request/response lines.
func WithLogger(logger servicing.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a dispatcher for the given base URL and bearer token.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	client := &Client{
		baseURL:    parsed,
		token:      strings.TrimSpace(token),
		userAgent:  defaultUserAgent(),
		httpClient: newTransport(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// newTransport builds the underlying HTTP client. Every dispatch is exactly
// one attempt: failed calls are surfaced to the caller, never retried.
func newTransport() *retryablehttp.Client {
	transport := retryablehttp.NewClient()
	transport.RetryMax = 0
	transport.Logger = nil
	transport.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		return false, nil
	}

	return transport
}

// Request describes one HTTP exchange against the servicing API.
type Request struct {
	Method string
	Path   string
	// Token overrides the client-level bearer token for this call only.
	Token string
	Query url.Values
	// Body is JSON-encoded when non-nil.
	Body any
	// Headers are call-specific headers; they win over client defaults.
	Headers map[string]string
}

// Do resolves the request against the base URL, performs the exchange, and
// wraps whatever the server answered. A non-2xx status is not an error here;
// callers raise it via Response.Validate. Transport failures are returned
// as-is, wrapped only for context.
func (c *Client) Do(ctx context.Context, req *Request) (*servicing.Response, error) {
	target, err := c.resolveURL(req.Path)
	if err != nil {
		return nil, err
	}

	if target.Scheme != "http" && target.Scheme != "https" {
		return nil, &servicing.RequestError{URL: target.String()}
	}

	if len(req.Query) > 0 {
		query := target.Query()
		for key, values := range req.Query {
			for _, value := range values {
				query.Add(key, value)
			}
		}

		target.RawQuery = query.Encode()
	}

	var payload []byte

	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	headers := c.buildHeaders(req)
	if payload != nil {
		headers.Set("Content-Type", "application/json; charset=utf-8")
	}

	c.logRequest(req.Method, target, headers)

	httpResp, err := c.perform(ctx, req.Method, target.String(), payload, headers)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var data any

	if len(body) > 0 {
		err = json.Unmarshal(body, &data)
		if err != nil {
			return nil, fmt.Errorf("decoding response body: %w", err)
		}
	}

	resp := &servicing.Response{
		Method:  req.Method,
		URL:     target.String(),
		Status:  httpResp.StatusCode,
		Headers: httpResp.Header,
		Data:    data,
	}

	c.logResponse(resp)

	return resp, nil
}

// Get dispatches a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*servicing.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post dispatches a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*servicing.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put dispatches a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*servicing.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete dispatches a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*servicing.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) perform(ctx context.Context, method, target string, payload []byte, headers http.Header) (*http.Response, error) {
	var body any
	if payload != nil {
		body = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header = headers

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("failed to send a request to the servicing API", map[string]any{
				"method": method,
				"url":    target,
				"error":  err.Error(),
			})
		}

		return nil, fmt.Errorf("sending request: %w", err)
	}

	return httpResp, nil
}

// buildHeaders assembles headers in override order: user agent, client
// defaults, authorization with the effective token, then call-specific
// headers. Later entries win.
func (c *Client) buildHeaders(req *Request) http.Header {
	headers := make(http.Header)
	headers.Set("User-Agent", c.userAgent)
	headers.Set("Accept", "application/json")

	for key, value := range c.headers {
		headers.Set(key, value)
	}

	token := c.token
	if req.Token != "" {
		token = strings.TrimSpace(req.Token)
	}

	headers.Set("Authorization", "Bearer "+token)

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

func (c *Client) resolveURL(path string) (*url.URL, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing request path: %w", err)
	}

	return c.baseURL.ResolveReference(rel), nil
}

func (c *Client) logRequest(method string, target *url.URL, headers http.Header) {
	if !c.debug || c.logger == nil {
		return
	}

	redacted := make(map[string]any, len(headers))

	for key := range headers {
		if strings.EqualFold(key, "Authorization") {
			redacted[key] = "(redacted)"

			continue
		}

		redacted[key] = headers.Get(key)
	}

	c.logger.Debug("sending a request", map[string]any{
		"method":  method,
		"url":     target.String(),
		"headers": redacted,
	})
}

func (c *Client) logResponse(resp *servicing.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("received a response", map[string]any{
		"status": resp.Status,
		"url":    resp.URL,
		"body":   resp.Data,
	})
}
