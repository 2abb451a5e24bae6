package servicing

import (
	"context"
	"crypto/tls"
)

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.loan-street.com:8443/"

// InstitutionsClient exposes the institution resource family.
type InstitutionsClient interface {
	Register(ctx context.Context, institution *Institution) (*Response, error)
	Get(ctx context.Context, institutionID string) (*Response, error)
	List(ctx context.Context) (*Response, error)
	ListLoans(ctx context.Context, institutionID string, view ViewType) (*Response, error)
	CreateFund(ctx context.Context, institutionID string, fund *Fund) (*Response, error)
	GetFund(ctx context.Context, fundID string) (*Response, error)
}

// LoansClient exposes the loan resource family.
type LoansClient interface {
	Register(ctx context.Context, loan *Loan) (*Response, error)
	Get(ctx context.Context, loanID string) (*Response, error)
	Update(ctx context.Context, loanID string, loan *Loan) (*Response, error)
	GetBalance(ctx context.Context, loanID string) (*Response, error)
	GetInterest(ctx context.Context, loanID, startDate, endDate string) (*Response, error)
	GetInvoice(ctx context.Context, loanID string, periodNumber int) (*Response, error)
	DrawFunds(ctx context.Context, loanID string, draw *Draw) (*Response, error)
	CreatePayment(ctx context.Context, loanID string, payment *Payment) (*Response, error)
	CreateForgiveness(ctx context.Context, loanID string, forgiveness *Forgiveness) (*Response, error)
	CreateMiscFee(ctx context.Context, loanID string, fee *MiscFee) (*Response, error)
	// ListTransactions filters by transaction type when one is given; an
	// empty type contributes no query parameter at all.
	ListTransactions(ctx context.Context, loanID string, transactionType TransactionType) (*Response, error)
	// ListTrackers filters by end date when one is given; an empty date
	// contributes no query parameter at all.
	ListTrackers(ctx context.Context, loanID string, endDate string) (*Response, error)
}

// TransactionsClient exposes the transaction resource family.
type TransactionsClient interface {
	Get(ctx context.Context, transactionID string) (*Response, error)
	Void(ctx context.Context, transactionID string) (*Response, error)
}

// UsersClient exposes the user resource family.
type UsersClient interface {
	Create(ctx context.Context, user *User) (*Response, error)
	Get(ctx context.Context, userID string) (*Response, error)
	List(ctx context.Context) (*Response, error)
}

// Client is the top-level servicing API client. Sub-clients are stateless
// façades over the shared dispatcher; a Client is safe for concurrent use
// because it holds only immutable-after-construction configuration.
type Client interface {
	Institutions() InstitutionsClient
	Loans() LoansClient
	Transactions() TransactionsClient
	Users() UsersClient

	Status(ctx context.Context) (*Response, error)
	Login(ctx context.Context, email, password string) (*Response, error)
	GetBenchmarkRate(ctx context.Context, benchmark BenchmarkName, date string) (*Response, error)
	NextBusinessDay(ctx context.Context, date string) (*Response, error)
	PreviousBusinessDay(ctx context.Context, date string) (*Response, error)
}

// Logger is the minimal structured logging surface used by the library.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// Config carries the immutable construction-time settings for a client.
type Config struct {
	// BaseURL is the servicing API root. Defaults to DefaultBaseURL; a
	// schemeless value gains "https://".
	BaseURL string
	// Token is the client-level bearer token. Individual calls may override
	// it via per-call tokens where a sub-client supports that.
	Token string
	// Headers are default headers attached to every request.
	Headers map[string]string
	// TLSConfig optionally overrides certificate trust, e.g. to talk to a
	// self-signed local endpoint.
	TLSConfig *tls.Config
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives debug-level request and response lines.
	Logger Logger
}
