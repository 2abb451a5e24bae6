package servicing

import (
	"fmt"
	"net/http"
)

// Response wraps exactly one request/response exchange with the servicing
// API. It is created by the request dispatcher, immutable once returned, and
// carries whatever status and body the server produced, successful or not.
type Response struct {
	Method  string
	URL     string
	Status  int
	Headers http.Header
	// Data is the JSON-decoded body: a map for object bodies, a []any for
	// listing endpoints, or nil when the body was empty.
	Data any
}

// Get retrieves a key from the response body, or nil if the key is absent or
// the body is not an object.
func (r *Response) Get(key string) any {
	return r.GetDefault(key, nil)
}

// GetDefault retrieves a key from the response body, falling back to def
// when the key is absent or the body is not an object.
func (r *Response) GetDefault(key string, def any) any {
	data, ok := r.Data.(map[string]any)
	if !ok {
		return def
	}

	value, ok := data[key]
	if !ok {
		return def
	}

	return value
}

// GetString retrieves a string-valued key from the response body, or "" when
// the key is absent or not a string.
func (r *Response) GetString(key string) string {
	value, _ := r.Get(key).(string)

	return value
}

// List returns the response body as a list for listing endpoints, or nil
// when the body is not a JSON array.
func (r *Response) List() []any {
	list, _ := r.Data.([]any)

	return list
}

// String renders the decoded body.
func (r *Response) String() string {
	return fmt.Sprintf("%v", r.Data)
}

// Validate checks that the servicing API answered with a 2xx status. On
// success it returns the response unchanged; otherwise it returns an
// *APIError embedding the full response. This is the sole place a non-2xx
// status becomes an error.
func (r *Response) Validate() (*Response, error) {
	if r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices {
		return r, nil
	}

	return nil, &APIError{Response: r}
}
