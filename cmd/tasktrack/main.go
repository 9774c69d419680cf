// Package main is the entry point for the tasktrack CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasktrack/internal/cli"

	// Menu commands register themselves via init()
	_ "tasktrack/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// After the first signal, a second one terminates immediately.
	go func() {
		<-ctx.Done()
		stop()
	}()

	return cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
