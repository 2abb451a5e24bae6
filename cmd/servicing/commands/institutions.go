package commands

import (
	"context"
	"fmt"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/spf13/cobra"
)

// NewInstitutionsCommand creates the institutions command group
func NewInstitutionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "institutions",
		Aliases: []string{"institution"},
		Short:   "Manage institutions",
		Long:    "List, inspect, and register institutions",
	}

	cmd.AddCommand(newInstitutionsListCommand())
	cmd.AddCommand(newInstitutionsGetCommand())
	cmd.AddCommand(newInstitutionsRegisterCommand())
	cmd.AddCommand(newInstitutionsLoansCommand())

	return cmd
}

func newInstitutionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List institutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Institutions().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing institutions: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderListResponse(validated, "institution_id", "name", "ticker")
		},
	}
}

func newInstitutionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INSTITUTION_ID",
		Short: "Show an institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Institutions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting institution: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}
}

func newInstitutionsRegisterCommand() *cobra.Command {
	var (
		name   string
		ticker string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new institution",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Institutions().Register(context.Background(), &servicing.Institution{
				Name:   name,
				Ticker: ticker,
			})
			if err != nil {
				return fmt.Errorf("registering institution: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderResponse(validated)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "institution name (required)")
	cmd.Flags().StringVar(&ticker, "ticker", "", "institution ticker symbol")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newInstitutionsLoansCommand() *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "loans INSTITUTION_ID",
		Short: "List an institution's loans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Institutions().ListLoans(context.Background(), args[0], servicing.ViewType(view))
			if err != nil {
				return fmt.Errorf("listing institution loans: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			return renderListResponse(validated, "loan_id", "annual_rate", "origination_date")
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "view type (BASIC or FULL)")

	return cmd
}
