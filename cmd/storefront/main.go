package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dwikikusuma/pizzeria-storefront/internal/cli"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/shutdown"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	root := cli.NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
