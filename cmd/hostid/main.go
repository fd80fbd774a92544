package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/slashdevops/hostid/internal/command"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Set up a signal-interruptible context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := command.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hostid: %v\n", err)

		return 1
	}

	return 0
}
