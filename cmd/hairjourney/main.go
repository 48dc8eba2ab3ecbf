package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tableflip.dev/hairjourney/pkg/commands"
	"tableflip.dev/hairjourney/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
