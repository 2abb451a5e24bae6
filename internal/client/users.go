package client

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/internal/http"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// UsersClient implements servicing.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Create implements servicing.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, user *servicing.User) (*servicing.Response, error) {
	body, err := servicing.ToWireFormat(user)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/v1/private/user", body)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return resp, nil
}

// Get implements servicing.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*servicing.Response, error) {
	err := requireUUID("user_id", userID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/private/user/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return resp, nil
}

// List implements servicing.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) (*servicing.Response, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/private/user", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return resp, nil
}
