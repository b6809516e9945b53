package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/leapmux/idgen/internal/batch"
	"github.com/leapmux/idgen/internal/config"
	"github.com/leapmux/idgen/internal/logging"
	"github.com/leapmux/idgen/server"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	addr := fs.String("addr", "", "listen address (default \":4328\")")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	maxBatch := fs.Int("max-batch", 0, "largest n accepted per request; 0 disables the cap")
	node := fs.String("node", "", "version 1 node as 12 hex digits")
	showVersion := fs.Bool("version", false, "print version and exit")
	_ = fs.Parse(args)

	if *showVersion {
		fmt.Println(version)
		return nil
	}

	overrides := flagOverrides(fs, map[string]func() any{
		"addr":      func() any { return *addr },
		"log-level": func() any { return *logLevel },
		"max-batch": func() any { return *maxBatch },
		"node":      func() any { return *node },
	})

	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)

	logging.PrintBanner(os.Stderr, logging.IsTerminal(os.Stderr), version, cfg.Addr, batch.Workers())

	srv, err := server.NewServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Debug("config loaded", "max_batch", cfg.MaxBatch, "compress_min_bytes", cfg.CompressMinBytes, "node", cfg.Node)
	return srv.Serve(ctx)
}

// flagOverrides collects the flags set explicitly on the command line,
// keyed by their config name (dashes become underscores).
func flagOverrides(fs *flag.FlagSet, values map[string]func() any) map[string]any {
	out := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if get, ok := values[f.Name]; ok {
			out[configKey(f.Name)] = get()
		}
	})
	return out
}

func configKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}
