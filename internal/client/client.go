// Package client contains the concrete servicing.Client implementation and
// its resource sub-clients.
package client

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/internal/http"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// Client implements the servicing.Client interface.
type Client struct {
	httpClient *http.Client

	institutions servicing.InstitutionsClient
	loans        servicing.LoansClient
	transactions servicing.TransactionsClient
	users        servicing.UsersClient
}

// New creates a servicing API client from the given config. The base URL is
// expected to be normalized already (see pkg/servicingclient).
func New(config *servicing.Config) (*Client, error) {
	if config == nil {
		return nil, servicing.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = servicing.DefaultBaseURL
	}

	httpClient, err := http.NewClient(baseURL, config.Token, httpOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating dispatcher: %w", err)
	}

	client := &Client{httpClient: httpClient}
	client.institutions = NewInstitutionsClient(httpClient)
	client.loans = NewLoansClient(httpClient)
	client.transactions = NewTransactionsClient(httpClient)
	client.users = NewUsersClient(httpClient)

	return client, nil
}

// httpOptions builds dispatcher options from config.
func httpOptions(config *servicing.Config) []http.Option {
	var opts []http.Option

	if len(config.Headers) > 0 {
		opts = append(opts, http.WithHeaders(config.Headers))
	}

	if config.TLSConfig != nil {
		opts = append(opts, http.WithTLSConfig(config.TLSConfig))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	return opts
}

// Institutions implements servicing.Client.Institutions.
func (c *Client) Institutions() servicing.InstitutionsClient {
	return c.institutions
}

// Loans implements servicing.Client.Loans.
func (c *Client) Loans() servicing.LoansClient {
	return c.loans
}

// Transactions implements servicing.Client.Transactions.
func (c *Client) Transactions() servicing.TransactionsClient {
	return c.transactions
}

// Users implements servicing.Client.Users.
func (c *Client) Users() servicing.UsersClient {
	return c.users
}

// Status implements servicing.Client.Status.
func (c *Client) Status(ctx context.Context) (*servicing.Response, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/public/status", nil)
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	return resp, nil
}

// Login implements servicing.Client.Login. The returned response carries a
// bearer token under the "token" key on success.
func (c *Client) Login(ctx context.Context, email, password string) (*servicing.Response, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.httpClient.Post(ctx, "/v1/public/token", body)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return resp, nil
}

// GetBenchmarkRate implements servicing.Client.GetBenchmarkRate.
func (c *Client) GetBenchmarkRate(ctx context.Context, benchmark servicing.BenchmarkName, date string) (*servicing.Response, error) {
	path := fmt.Sprintf("/v1/public/benchmark/%s/%s", benchmark, date)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting benchmark rate: %w", err)
	}

	return resp, nil
}

// NextBusinessDay implements servicing.Client.NextBusinessDay.
func (c *Client) NextBusinessDay(ctx context.Context, date string) (*servicing.Response, error) {
	path := fmt.Sprintf("/v1/public/finance/next-business-day/%s", date)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting next business day: %w", err)
	}

	return resp, nil
}

// PreviousBusinessDay implements servicing.Client.PreviousBusinessDay.
func (c *Client) PreviousBusinessDay(ctx context.Context, date string) (*servicing.Response, error) {
	path := fmt.Sprintf("/v1/public/finance/previous-business-day/%s", date)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting previous business day: %w", err)
	}

	return resp, nil
}
