package servicingclient

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

func TestNew_DoesNotMutateConfig(t *testing.T) {
	config := &servicing.Config{Token: "test-token"}

	_, err := New(config)
	require.NoError(t, err)
	assert.Empty(t, config.BaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "empty falls back to default",
			baseURL:  "",
			expected: servicing.DefaultBaseURL,
		},
		{
			name:     "schemeless gains https",
			baseURL:  "api.loan-street.com:8443",
			expected: "https://api.loan-street.com:8443",
		},
		{
			name:     "http preserved",
			baseURL:  "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "https preserved",
			baseURL:  "https://api.loan-street.com:8443/",
			expected: "https://api.loan-street.com:8443/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeBaseURL(tt.baseURL))
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/public/status", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))
	defer server.Close()

	client, err := New(&servicing.Config{BaseURL: server.URL, Token: "test-token"})
	require.NoError(t, err)

	resp, err := client.Status(context.Background())
	require.NoError(t, err)

	validated, err := resp.Validate()
	require.NoError(t, err)
	assert.Equal(t, "OK", validated.GetString("status"))
}
