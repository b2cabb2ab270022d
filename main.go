package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"podash/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := &cli.Flags{}
	rootCmd := cli.RootCmd(flags)

	// Add subcommands
	rootCmd.AddCommand(cli.TasksCmd(flags))
	rootCmd.AddCommand(cli.ToggleCmd(flags))
	rootCmd.AddCommand(cli.OrderCmd(flags))
	rootCmd.AddCommand(cli.ExportCmd(flags))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
