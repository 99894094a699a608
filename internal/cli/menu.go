package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewMenuCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [text...]",
		Short: "Show the pizza menu, or match free text against it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(opts, nil)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			app.Bootstrap(ctx)

			out := cmd.OutOrStdout()

			if len(args) > 0 {
				pizza, ok := app.Catalog.Match(strings.Join(args, " "))
				if !ok {
					fmt.Fprintln(out, "no pizza matched")
					return nil
				}
				fmt.Fprintf(out, "#%d %s %s\n%s\n", pizza.ID, pizza.Name, pizza.Price, pizza.Description)
				return nil
			}

			pizzas := app.Catalog.Pizzas()
			if len(pizzas) == 0 {
				fmt.Fprintln(out, "the menu is unavailable right now")
				return nil
			}
			for _, p := range pizzas {
				fmt.Fprintf(out, "%3d  %-24s %10s  %s\n", p.ID, p.Name, p.Price, p.Description)
			}
			return nil
		},
	}
}
