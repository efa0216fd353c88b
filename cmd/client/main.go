package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Studenten/internal/cli/commands"
	"Studenten/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// -h/--help are consumed by flag.Parse inside NewConfig
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprint(out, commands.FormatGlobalUsage())
		fmt.Fprintln(out, "\nFlags:")
		flag.PrintDefaults()
	}
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}

func printVersion(cfg *config.Config) {
	fmt.Printf("scli %s (built %s)\n", version, buildDate)
	fmt.Printf("server:     %s\n", cfg.ServerURL)
	fmt.Printf("token file: %s\n", cfg.TokenFile)
	fmt.Printf("etag cache: %s\n", cfg.ClientDBPath)
}
