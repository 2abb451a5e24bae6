package servicing

import (
	"errors"
	"fmt"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired = errors.New("config is required")
)

// FormationError reports that a domain object failed local validation before
// serialization. It is always raised synchronously, never from the network.
type FormationError struct {
	Message string
}

// Error implements the error interface.
func (e *FormationError) Error() string {
	return e.Message
}

// InvalidPathParamError reports that a path-positioned identifier failed
// UUID-format validation. No request is issued when this is returned.
type InvalidPathParamError struct {
	Param string
	Value string
}

// Error implements the error interface.
func (e *InvalidPathParamError) Error() string {
	return fmt.Sprintf("%s path parameter is not a valid UUID: %q", e.Param, e.Value)
}

// RequestError reports that the computed request target is not an HTTP(S)
// URL. It is returned before anything is sent.
type RequestError struct {
	URL string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid URL detected: %s", e.URL)
}

// APIError reports a non-2xx response from the servicing API. It is only
// produced by Response.Validate; the dispatcher itself never inspects status
// codes. The full response is embedded for diagnostics.
type APIError struct {
	Response *Response
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf(
		"the request to the servicing API failed: the server responded with [%d] %s",
		e.Response.Status, e.Response,
	)
}

// IsFormationError checks if the error is a local object-validation failure.
func IsFormationError(err error) bool {
	formationErr := &FormationError{}

	return errors.As(err, &formationErr)
}

// IsInvalidPathParam checks if the error is a path-parameter validation
// failure.
func IsInvalidPathParam(err error) bool {
	pathErr := &InvalidPathParamError{}

	return errors.As(err, &pathErr)
}

// IsAPIError checks if the error is a non-2xx API response surfaced by
// Response.Validate.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}
