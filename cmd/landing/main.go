package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcrobe/nojs-landing/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		cli.ReportError(err, os.Stderr)
		stop()
		os.Exit(1)
	}
}
