package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/pizzeria-storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/pizzeria-storefront/internal/cart/domain"
)

// openSignal records the engine's "cart should become visible" signal
// so the command can show the cart after the mutation.
type openSignal struct {
	opened bool
}

func (o *openSignal) OpenCart() {
	o.opened = true
}

func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart",
	}

	cmd.AddCommand(
		newCartShowCommand(opts),
		newCartAddCommand(opts),
		newCartRemoveCommand(opts),
		newCartQuantityCommand(opts, "inc", "Increase a line's quantity by one", +1),
		newCartQuantityCommand(opts, "dec", "Decrease a line's quantity by one", -1),
		newCartClearCommand(opts),
	)

	return cmd
}

func newCartShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart and its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Cart.Hydrate(cmd.Context())
			printCart(cmd.OutOrStdout(), app)
			return nil
		},
	}
}

func newCartAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pizza-id>",
		Short: "Add a pizza to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			signal := &openSignal{}
			app, err := openApp(opts, signal)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			app.Bootstrap(ctx)

			pizza, ok := app.Catalog.Get(id)
			if !ok {
				return fmt.Errorf("pizza %d is not on the menu", id)
			}

			app.Cart.AddItem(ctx, cartapp.Item{
				PizzaID:  pizza.ID,
				Name:     pizza.Name,
				Price:    cartdomain.Cents(pizza.Price),
				ImageURL: pizza.ImageURL,
			})

			if signal.opened {
				printCart(cmd.OutOrStdout(), app)
			}
			return nil
		},
	}
}

func newCartRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pizza-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			app.Cart.Hydrate(ctx)
			app.Cart.RemoveItem(ctx, id)
			printCart(cmd.OutOrStdout(), app)
			return nil
		},
	}
}

func newCartQuantityCommand(opts *RootOptions, use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <pizza-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pizza id %q", args[0])
			}

			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			app.Cart.Hydrate(ctx)
			app.Cart.UpdateQuantity(ctx, id, delta)
			printCart(cmd.OutOrStdout(), app)
			return nil
		},
	}
}

func newCartClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Cart.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	}
}
