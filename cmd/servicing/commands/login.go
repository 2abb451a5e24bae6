package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the servicing API",
		Long:  "Exchange an email and password for a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Login(context.Background(), email, password)
			if err != nil {
				return fmt.Errorf("logging in: %w", err)
			}

			validated, err := resp.Validate()
			if err != nil {
				return err
			}

			token := validated.GetString("token")
			if token == "" {
				fmt.Println("Login succeeded but no token was returned")

				return nil
			}

			fmt.Println("Successfully logged in")
			fmt.Printf("Export the token to use private endpoints:\n\n  export SERVICING_TOKEN=%s\n", token)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email for authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")

	return cmd
}
