package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsClient_Get(t *testing.T) {
	transactionID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/private/transaction/"+transactionID, r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"transaction_id": transactionID, "type": "DRAW"})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := servicingClient.Transactions().Get(context.Background(), transactionID)
	require.NoError(t, err)
	assert.Equal(t, "DRAW", resp.GetString("type"))
}

func TestTransactionsClient_Void(t *testing.T) {
	transactionID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/private/transaction/"+transactionID+"/void", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{"transaction_id": transactionID})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := servicingClient.Transactions().Void(context.Background(), transactionID)
	require.NoError(t, err)
	assert.Equal(t, transactionID, resp.GetString("transaction_id"))
}

func TestTransactionsClient_UUIDGate(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	ctx := context.Background()
	transactions := servicingClient.Transactions()

	_, err = transactions.Get(ctx, "not-a-uuid")
	assert.True(t, servicing.IsInvalidPathParam(err))

	_, err = transactions.Void(ctx, "not-a-uuid")
	assert.True(t, servicing.IsInvalidPathParam(err))

	assert.Equal(t, 0, requests)
}
