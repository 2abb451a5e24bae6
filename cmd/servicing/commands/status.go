package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check API availability",
		Long:  "Query the public status endpoint of the servicing API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Status(context.Background())
			if err != nil {
				return fmt.Errorf("checking status: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}
