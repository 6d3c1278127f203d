package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/tracalorie/internal/cli"
	"github.com/idilsaglam/tracalorie/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Run(ctx, os.Args[1:], cli.Options{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: tui.Run,
	})
	stop()
	os.Exit(code)
}
