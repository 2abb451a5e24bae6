package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	client, err := New(nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, servicing.ErrConfigRequired)
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	client, err := New(&servicing.Config{Token: "test-token"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClient_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/public/status", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := servicingClient.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetString("status"))
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/public/token", r.URL.Path)

		var body map[string]string

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "support@loan-street.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := servicingClient.Login(context.Background(), "support@loan-street.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.GetString("token"))
}

func TestClient_GetBenchmarkRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/public/benchmark/PRIME/2020-05-27", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"rate": "0.0325"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := servicingClient.GetBenchmarkRate(context.Background(), servicing.BenchmarkPrime, "2020-05-27")
	require.NoError(t, err)
	assert.Equal(t, "0.0325", resp.GetString("rate"))
}

func TestClient_BusinessDays(t *testing.T) {
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"date": "2020-05-28"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	ctx := context.Background()

	resp, err := servicingClient.NextBusinessDay(ctx, "2020-05-27")
	require.NoError(t, err)
	assert.Equal(t, "2020-05-28", resp.GetString("date"))

	_, err = servicingClient.PreviousBusinessDay(ctx, "2020-05-27")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/v1/public/finance/next-business-day/2020-05-27",
		"/v1/public/finance/previous-business-day/2020-05-27",
	}, paths)
}

func TestClient_ErrorStatusFlowsThroughValidate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad credentials"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := servicingClient.Login(context.Background(), "support@loan-street.com", "wrong")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)

	_, err = resp.Validate()
	assert.True(t, servicing.IsAPIError(err))
}

func TestRequireUUID(t *testing.T) {
	assert.NoError(t, requireUUID("loan_id", "898be40f-a26e-43cb-b15c-679afdc7e278"))

	err := requireUUID("loan_id", "not-a-uuid")
	require.Error(t, err)
	assert.True(t, servicing.IsInvalidPathParam(err))
	assert.Contains(t, err.Error(), "loan_id")
}
