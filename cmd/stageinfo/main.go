package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lifestage/internal/app"
	"lifestage/internal/ctxlog"
)

func main() {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("stageinfo: %v", err)
	}
	lvl, err := cfg.Level()
	if err != nil {
		exitf("stageinfo: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		exitf("stageinfo: %v", err)
	}
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
