package commands

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/spf13/cobra"
)

// NewLoansCommand creates the loans command group
func NewLoansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loans",
		Aliases: []string{"loan"},
		Short:   "Manage loans",
		Long:    "Inspect loans, balances, and loan transactions",
	}

	cmd.AddCommand(newLoansGetCommand())
	cmd.AddCommand(newLoansBalanceCommand())
	cmd.AddCommand(newLoansInterestCommand())
	cmd.AddCommand(newLoansTransactionsCommand())

	return cmd
}

func newLoansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LOAN_ID",
		Short: "Show a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Loans().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting loan: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}

func newLoansBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance LOAN_ID",
		Short: "Show a loan's outstanding balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Loans().GetBalance(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting loan balance: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}

func newLoansInterestCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "interest LOAN_ID",
		Short: "Show accrued interest over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Loans().GetInterest(context.Background(), args[0], startDate, endDate)
			if err != nil {
				return fmt.Errorf("getting loan interest: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "range start (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "range end (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")

	return cmd
}

func newLoansTransactionsCommand() *cobra.Command {
	var transactionType string

	cmd := &cobra.Command{
		Use:   "transactions LOAN_ID",
		Short: "List a loan's transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Loans().ListTransactions(context.Background(), args[0],
				servicing.TransactionType(transactionType))
			if err != nil {
				return fmt.Errorf("listing loan transactions: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderListResponse(validated, "transaction_id", "type", "date", "amount")
		},
	}

	cmd.Flags().StringVar(&transactionType, "type", "", "filter by transaction type (DRAW, PAYMENT, FORGIVENESS, MISC_FEE)")

	return cmd
}
