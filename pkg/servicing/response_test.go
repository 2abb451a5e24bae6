package servicing_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Get(t *testing.T) {
	resp := &servicing.Response{
		Method: "GET",
		URL:    "https://api.loan-street.com:8443/v1/private/loan/abc",
		Status: http.StatusOK,
		Data:   map[string]any{"loan_id": "abc", "annual_rate": 0.0475},
	}

	assert.Equal(t, "abc", resp.Get("loan_id"))
	assert.Equal(t, "abc", resp.GetString("loan_id"))
	assert.Nil(t, resp.Get("missing"))
	assert.Equal(t, "fallback", resp.GetDefault("missing", "fallback"))
	assert.Empty(t, resp.GetString("annual_rate"))
}

func TestResponse_GetWithNilBody(t *testing.T) {
	resp := &servicing.Response{Status: http.StatusNoContent}

	assert.Nil(t, resp.Get("anything"))
	assert.Equal(t, "fallback", resp.GetDefault("anything", "fallback"))
}

func TestResponse_List(t *testing.T) {
	resp := &servicing.Response{
		Status: http.StatusOK,
		Data:   []any{map[string]any{"loan_id": "a"}, map[string]any{"loan_id": "b"}},
	}

	assert.Len(t, resp.List(), 2)
	assert.Nil(t, resp.Get("loan_id"))

	object := &servicing.Response{Status: http.StatusOK, Data: map[string]any{}}
	assert.Nil(t, object.List())
}

func TestResponse_ValidateSuccess(t *testing.T) {
	resp := &servicing.Response{Status: http.StatusCreated}

	validated, err := resp.Validate()
	require.NoError(t, err)
	assert.Same(t, resp, validated)
}

func TestResponse_ValidateFailure(t *testing.T) {
	resp := &servicing.Response{
		Method: "GET",
		URL:    "https://api.loan-street.com:8443/v1/private/loan/missing",
		Status: http.StatusNotFound,
		Data:   map[string]any{"error": "loan not found"},
	}

	validated, err := resp.Validate()
	require.Error(t, err)
	assert.Nil(t, validated)

	apiErr := &servicing.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Same(t, resp, apiErr.Response)
	assert.Contains(t, apiErr.Error(), "[404]")
	assert.Contains(t, apiErr.Error(), "loan not found")
}

func TestResponse_ValidateBoundaries(t *testing.T) {
	for _, status := range []int{200, 204, 299} {
		resp := &servicing.Response{Status: status}

		_, err := resp.Validate()
		assert.NoError(t, err, "status %d", status)
	}

	for _, status := range []int{199, 300, 401, 500} {
		resp := &servicing.Response{Status: status}

		_, err := resp.Validate()
		assert.Error(t, err, "status %d", status)
	}
}
