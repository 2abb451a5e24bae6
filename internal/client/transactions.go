package client

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/internal/http"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// TransactionsClient implements servicing.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{httpClient: httpClient}
}

// Get implements servicing.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, transactionID string) (*servicing.Response, error) {
	err := requireUUID("transaction_id", transactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/private/transaction/"+transactionID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return resp, nil
}

// Void implements servicing.TransactionsClient.Void.
func (c *TransactionsClient) Void(ctx context.Context, transactionID string) (*servicing.Response, error) {
	err := requireUUID("transaction_id", transactionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/v1/private/transaction/%s/void", transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("voiding transaction: %w", err)
	}

	return resp, nil
}
