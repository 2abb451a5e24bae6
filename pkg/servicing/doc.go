// Package servicing defines the public surface of the LoanStreet-style
// loan-servicing API client: domain objects and their wire-format
// serialization, the response wrapper, the error taxonomy, and the client
// interfaces.
//
// Use github.com/loanstreet/servicing-go/pkg/servicingclient to construct a
// working client:
//
//	client, err := servicingclient.New(&servicing.Config{
//		BaseURL: "https://api.loan-street.com:8443/",
//		Token:   os.Getenv("SERVICING_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Loans().Get(ctx, loanID)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := resp.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// Sub-clients return the raw *Response for every call, successful or not;
// callers decide whether a non-2xx status is an error by calling
// Response.Validate.
package servicing

// Version is the library version reported in the User-Agent header.
const Version = "1.1.0"
