package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/f1-telemetry-service/internal/cli"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(appVersion).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "f1dash:", err)
		stop()
		os.Exit(1)
	}
}
