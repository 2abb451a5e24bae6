package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/loanstreet/servicing-go/internal/http"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// LoansClient implements servicing.LoansClient.
type LoansClient struct {
	httpClient *http.Client
}

// NewLoansClient creates a new loans client.
func NewLoansClient(httpClient *http.Client) *LoansClient {
	return &LoansClient{httpClient: httpClient}
}

// Register implements servicing.LoansClient.Register.
func (c *LoansClient) Register(ctx context.Context, loan *servicing.Loan) (*servicing.Response, error) {
	body, err := servicing.ToWireFormat(loan)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/v1/private/loan", body)
	if err != nil {
		return nil, fmt.Errorf("registering loan: %w", err)
	}

	return resp, nil
}

// Get implements servicing.LoansClient.Get.
func (c *LoansClient) Get(ctx context.Context, loanID string) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/private/loan/"+loanID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting loan: %w", err)
	}

	return resp, nil
}

// Update implements servicing.LoansClient.Update.
func (c *LoansClient) Update(ctx context.Context, loanID string, loan *servicing.Loan) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	body, err := servicing.ToWireFormat(loan)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/v1/private/loan/"+loanID, body)
	if err != nil {
		return nil, fmt.Errorf("updating loan: %w", err)
	}

	return resp, nil
}

// GetBalance implements servicing.LoansClient.GetBalance.
func (c *LoansClient) GetBalance(ctx context.Context, loanID string) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/loan/%s/balance", loanID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting loan balance: %w", err)
	}

	return resp, nil
}

// GetInterest implements servicing.LoansClient.GetInterest.
func (c *LoansClient) GetInterest(ctx context.Context, loanID, startDate, endDate string) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/loan/%s/interest", loanID), query)
	if err != nil {
		return nil, fmt.Errorf("getting loan interest: %w", err)
	}

	return resp, nil
}

// GetInvoice implements servicing.LoansClient.GetInvoice.
func (c *LoansClient) GetInvoice(ctx context.Context, loanID string, periodNumber int) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	query := url.Values{"periodNumber": []string{strconv.Itoa(periodNumber)}}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/loan/%s/invoice", loanID), query)
	if err != nil {
		return nil, fmt.Errorf("getting loan invoice: %w", err)
	}

	return resp, nil
}

// DrawFunds implements servicing.LoansClient.DrawFunds.
func (c *LoansClient) DrawFunds(ctx context.Context, loanID string, draw *servicing.Draw) (*servicing.Response, error) {
	return c.createTransaction(ctx, loanID, "draw", draw, "drawing funds")
}

// CreatePayment implements servicing.LoansClient.CreatePayment.
func (c *LoansClient) CreatePayment(ctx context.Context, loanID string, payment *servicing.Payment) (*servicing.Response, error) {
	return c.createTransaction(ctx, loanID, "payment", payment, "creating payment")
}

// CreateForgiveness implements servicing.LoansClient.CreateForgiveness.
func (c *LoansClient) CreateForgiveness(ctx context.Context, loanID string, forgiveness *servicing.Forgiveness) (*servicing.Response, error) {
	return c.createTransaction(ctx, loanID, "forgiveness", forgiveness, "creating forgiveness")
}

// CreateMiscFee implements servicing.LoansClient.CreateMiscFee.
func (c *LoansClient) CreateMiscFee(ctx context.Context, loanID string, fee *servicing.MiscFee) (*servicing.Response, error) {
	return c.createTransaction(ctx, loanID, "misc-fee", fee, "creating misc fee")
}

// createTransaction posts a serialized transaction object under the loan.
func (c *LoansClient) createTransaction(ctx context.Context, loanID, resource string, object servicing.Serializable, action string) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	body, err := servicing.ToWireFormat(object)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/v1/private/loan/%s/%s", loanID, resource), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return resp, nil
}

// ListTransactions implements servicing.LoansClient.ListTransactions. An
// empty transaction type contributes no query parameter.
func (c *LoansClient) ListTransactions(ctx context.Context, loanID string, transactionType servicing.TransactionType) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if transactionType != "" {
		query.Set("type", string(transactionType))
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/loan/%s/transaction", loanID), query)
	if err != nil {
		return nil, fmt.Errorf("listing loan transactions: %w", err)
	}

	return resp, nil
}

// ListTrackers implements servicing.LoansClient.ListTrackers. An empty end
// date contributes no query parameter.
func (c *LoansClient) ListTrackers(ctx context.Context, loanID string, endDate string) (*servicing.Response, error) {
	err := requireUUID("loan_id", loanID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/private/loan/%s/tracker", loanID), query)
	if err != nil {
		return nil, fmt.Errorf("listing loan trackers: %w", err)
	}

	return resp, nil
}
