package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sessionapp "github.com/dwikikusuma/pizzeria-storefront/internal/session/app"
)

func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the pizzeria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := app.Session.Login(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, sessionapp.ErrMissingFields) {
					return err
				}
				return errors.New(serverMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "welcome back, %s\n", session.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Session.Register(cmd.Context(), username, email, password); err != nil {
				if errors.Is(err, sessionapp.ErrMissingFields) {
					return err
				}
				return errors.New(serverMessage(err))
			}

			// registration never authenticates; point at login instead
			fmt.Fprintln(cmd.OutOrStdout(), "account created, you can now log in")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
