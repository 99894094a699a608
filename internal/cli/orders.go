package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			orders, err := app.Orders.History(cmd.Context())
			if err != nil {
				return errors.New(serverMessage(err))
			}

			out := cmd.OutOrStdout()
			if len(orders) == 0 {
				fmt.Fprintln(out, "no orders yet")
				return nil
			}

			for _, o := range orders {
				fmt.Fprintf(out, "order #%d  %s  %s  %s\n", o.ID, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"))
				for _, it := range o.Items {
					fmt.Fprintf(out, "  %3dx %-24s %10s\n", it.Quantity, it.PizzaName, it.UnitPrice)
				}
			}
			return nil
		},
	}
}
