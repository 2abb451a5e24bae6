// Package servicingclient provides the entry point for creating servicing
// API clients.
package servicingclient

import (
	"fmt"
	"strings"

	"github.com/loanstreet/servicing-go/internal/client"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// New creates a servicing API client. The base URL is normalized: an empty
// value falls back to servicing.DefaultBaseURL and a schemeless value gains
// "https://".
func New(config *servicing.Config) (servicing.Client, error) {
	if config == nil {
		return nil, servicing.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	servicingClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("creating servicing client: %w", err)
	}

	return servicingClient, nil
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return servicing.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return "https://" + baseURL
	}

	return baseURL
}
