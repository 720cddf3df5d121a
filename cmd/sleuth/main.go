package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwhitfield/sleuth/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override sleuth config path (optional)")
	apiBase := flag.String("api", "", "override Evidence Finder API address, host:port (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, APIBase: *apiBase}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sleuth: %v\n", err)
		return 1
	}
	return 0
}
