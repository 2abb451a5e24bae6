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

func TestUsersClient_Create(t *testing.T) {
	institutionID := uuid.New()
	userID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/private/user", r.URL.Path)

		var body map[string]any

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, institutionID.String(), body["institution_id"])
		assert.Equal(t, "test@loan-street.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": userID})
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := servicingClient.Users().Create(context.Background(), &servicing.User{
		InstitutionID: institutionID,
		Email:         "test@loan-street.com",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, resp.GetString("user_id"))
}

func TestUsersClient_Create_InvalidUser(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	_, err = servicingClient.Users().Create(context.Background(), &servicing.User{Email: "no-institution@loan-street.com"})
	require.Error(t, err)
	assert.True(t, servicing.IsFormationError(err))
	assert.Equal(t, 0, requests)
}

func TestUsersClient_GetAndList(t *testing.T) {
	userID := uuid.NewString()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/private/user":
			_ = json.NewEncoder(w).Encode([]any{map[string]any{"user_id": userID}})
		case "/v1/private/user/" + userID:
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": userID})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	ctx := context.Background()
	users := servicingClient.Users()

	resp, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp.List(), 1)

	resp, err = users.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, resp.GetString("user_id"))
}

func TestUsersClient_UUIDGate(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	servicingClient, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	_, err = servicingClient.Users().Get(context.Background(), "not-a-uuid")
	assert.True(t, servicing.IsInvalidPathParam(err))
	assert.Equal(t, 0, requests)
}
