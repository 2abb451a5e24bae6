package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/loanstreet/servicing-go/internal/http"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// InstitutionsClient implements servicing.InstitutionsClient.
type InstitutionsClient struct {
	httpClient *http.Client
}

// NewInstitutionsClient creates a new institutions client.
func NewInstitutionsClient(httpClient *http.Client) *InstitutionsClient {
	return &InstitutionsClient{httpClient: httpClient}
}

// Register implements servicing.InstitutionsClient.Register.
func (c *InstitutionsClient) Register(ctx context.Context, institution *servicing.Institution) (*servicing.Response, error) {
	body, err := servicing.ToWireFormat(institution)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/v1/private/institution", body)
	if err != nil {
		return nil, fmt.Errorf("registering institution: %w", err)
	}

	return resp, nil
}

// Get implements servicing.InstitutionsClient.Get.
func (c *InstitutionsClient) Get(ctx context.Context, institutionID string) (*servicing.Response, error) {
	err := requireUUID("institution_id", institutionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/private/institution/"+institutionID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting institution: %w", err)
	}

	return resp, nil
}

// List implements servicing.InstitutionsClient.List.
func (c *InstitutionsClient) List(ctx context.Context) (*servicing.Response, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/private/institution", nil)
	if err != nil {
		return nil, fmt.Errorf("listing institutions: %w", err)
	}

	return resp, nil
}

// ListLoans implements servicing.InstitutionsClient.ListLoans. The view
// defaults to BASIC when unset.
func (c *InstitutionsClient) ListLoans(ctx context.Context, institutionID string, view servicing.ViewType) (*servicing.Response, error) {
	err := requireUUID("institution_id", institutionID)
	if err != nil {
		return nil, err
	}

	if view == "" {
		view = servicing.ViewBasic
	}

	query := url.Values{"view": []string{string(view)}}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/institution/%s/loan", institutionID), query)
	if err != nil {
		return nil, fmt.Errorf("listing institution loans: %w", err)
	}

	return resp, nil
}

// CreateFund implements servicing.InstitutionsClient.CreateFund.
func (c *InstitutionsClient) CreateFund(ctx context.Context, institutionID string, fund *servicing.Fund) (*servicing.Response, error) {
	err := requireUUID("institution_id", institutionID)
	if err != nil {
		return nil, err
	}

	body, err := servicing.ToWireFormat(fund)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/v1/private/institution/%s/fund", institutionID), body)
	if err != nil {
		return nil, fmt.Errorf("creating fund: %w", err)
	}

	return resp, nil
}

// GetFund implements servicing.InstitutionsClient.GetFund.
func (c *InstitutionsClient) GetFund(ctx context.Context, fundID string) (*servicing.Response, error) {
	err := requireUUID("fund_id", fundID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/private/fund/"+fundID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fund: %w", err)
	}

	return resp, nil
}
