package servicing_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/stretchr/testify/assert"
)

func TestIsFormationError(t *testing.T) {
	err := &servicing.FormationError{Message: "name attribute is required"}

	assert.True(t, servicing.IsFormationError(err))
	assert.True(t, servicing.IsFormationError(fmt.Errorf("serializing: %w", err)))
	assert.False(t, servicing.IsFormationError(errors.New("name attribute is required")))
}

func TestIsInvalidPathParam(t *testing.T) {
	err := &servicing.InvalidPathParamError{Param: "loan_id", Value: "not-a-uuid"}

	assert.True(t, servicing.IsInvalidPathParam(err))
	assert.True(t, servicing.IsInvalidPathParam(fmt.Errorf("getting loan: %w", err)))
	assert.False(t, servicing.IsInvalidPathParam(errors.New("bad id")))

	assert.Contains(t, err.Error(), "loan_id")
	assert.Contains(t, err.Error(), "not-a-uuid")
}

func TestIsAPIError(t *testing.T) {
	err := &servicing.APIError{Response: &servicing.Response{Status: 502}}

	assert.True(t, servicing.IsAPIError(err))
	assert.False(t, servicing.IsAPIError(errors.New("bad gateway")))
}

func TestRequestError(t *testing.T) {
	err := &servicing.RequestError{URL: "ftp://api.loan-street.com/v1/public/status"}

	assert.Contains(t, err.Error(), "invalid URL detected")
	assert.Contains(t, err.Error(), "ftp://")
}
