package commands

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/spf13/cobra"
)

// NewBusinessDaysCommand creates the business-day command group
func NewBusinessDaysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "business-day",
		Short: "Look up business days",
	}

	cmd.AddCommand(newBusinessDayCommand(
		"next", "Show the next business day after a date",
		func(ctx context.Context, client servicing.Client, date string) (*servicing.Response, error) {
			return client.NextBusinessDay(ctx, date)
		}))
	cmd.AddCommand(newBusinessDayCommand(
		"previous", "Show the previous business day before a date",
		func(ctx context.Context, client servicing.Client, date string) (*servicing.Response, error) {
			return client.PreviousBusinessDay(ctx, date)
		}))

	return cmd
}

func newBusinessDayCommand(use, short string, lookup func(context.Context, servicing.Client, string) (*servicing.Response, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " DATE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := lookup(context.Background(), client, args[0])
			if err != nil {
				return fmt.Errorf("looking up business day: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}
