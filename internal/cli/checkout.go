package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	checkoutdomain "github.com/dwikikusuma/pizzeria-storefront/internal/checkout/domain"
)

func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			app.Bootstrap(ctx)

			outcome, err := app.Checkout.Checkout(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outcome.State {
			case checkoutdomain.StateRequiresAuth:
				fmt.Fprintln(out, outcome.Message)
				fmt.Fprintln(out, "run 'storefront login' and try again; your cart is untouched")
				return nil
			case checkoutdomain.StateSucceeded:
				fmt.Fprintf(out, "%s (order #%d)\n", outcome.Message, outcome.OrderID)
				return nil
			default:
				return errors.New(outcome.Message)
			}
		},
	}
}
