package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/pizzeria-storefront/internal/cart/app"
	"github.com/dwikikusuma/pizzeria-storefront/internal/storefront"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/config"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/logger"
)

// RootOptions holds persistent flags shared by every command.
type RootOptions struct {
	Verbose bool
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Pizzeria storefront client",
		Long:          "Browse the menu, build a cart that survives restarts, and place orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		NewMenuCommand(opts),
		NewCartCommand(opts),
		NewLoginCommand(opts),
		NewRegisterCommand(opts),
		NewLogoutCommand(opts),
		NewCheckoutCommand(opts),
		NewOrdersCommand(opts),
	)

	return cmd
}

// openApp loads config, builds the logger and wires the storefront.
// opener may be nil for commands that never mutate the cart.
func openApp(opts *RootOptions, opener cartapp.CartOpener) (*storefront.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   level,
	})

	return storefront.New(cfg, opener, log)
}

// serverMessage turns a collaborator error into what the user sees:
// the server's own message when it sent one, else a generic
// connection-failure line.
func serverMessage(err error) string {
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "error connecting to the server"
}

func printCart(w io.Writer, app *storefront.App) {
	lines := app.Cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(w, "your cart is empty")
		return
	}

	for _, l := range lines {
		fmt.Fprintf(w, "%3dx %-24s %10s  (#%d)\n", l.Quantity, l.Name, l.Price, l.PizzaID)
	}

	t := app.Cart.Totals()
	fmt.Fprintf(w, "\nsubtotal     %10s\n", t.Subtotal)
	fmt.Fprintf(w, "delivery fee %10s\n", t.DeliveryFee)
	fmt.Fprintf(w, "total        %10s\n", t.Total)
}
