package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/presetapp/gigboard/cmd/gigctl/cli"
)

func main() {
	root := cli.NewRootCommand()

	root.AddCommand(cli.NewFilterCommand())
	root.AddCommand(cli.NewPalettesCommand())
	root.AddCommand(cli.NewTokenCommand())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
