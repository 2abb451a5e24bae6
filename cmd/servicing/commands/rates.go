package commands

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/spf13/cobra"
)

// NewRatesCommand creates the rates command group
func NewRatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Look up benchmark rates",
	}

	cmd.AddCommand(newRatesGetCommand())

	return cmd
}

func newRatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BENCHMARK DATE",
		Short: "Show a benchmark rate on a date",
		Long:  "Show the published value of a benchmark rate (for example PRIME) on a given date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.GetBenchmarkRate(context.Background(), servicing.BenchmarkName(args[0]), args[1])
			if err != nil {
				return fmt.Errorf("getting benchmark rate: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}
