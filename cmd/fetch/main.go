package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/anyhttp/internal/config"
	"github.com/samvad-hq/anyhttp/internal/logger"
	"github.com/samvad-hq/anyhttp/pkg/anyhttp"
	"github.com/samvad-hq/anyhttp/pkg/anyhttp/loghttp"
	"github.com/samvad-hq/anyhttp/pkg/anyhttp/replayhttp"
	"github.com/samvad-hq/anyhttp/pkg/anyhttp/restyhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: fetch URL")
	}
	url := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, cleanup, err := buildClient(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := loghttp.Wrap(client, log).Execute(ctx, anyhttp.Get(url))
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	defer resp.Body.Close()

	// Any status code is a valid response; the caller decides what it
	// means. We just report it and print the body.
	log.Infow("response received", "status", resp.StatusCode)

	if _, err := io.Copy(os.Stdout, resp.Body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}

// buildClient wires the transport from config: a resty-backed client by
// default, recording through a bbolt store when record_path is set, or
// pure offline replay with replay_only.
func buildClient(cfg *config.Config) (anyhttp.Client, func(), error) {
	noop := func() {}

	if cfg.RecordPath == "" {
		client := restyhttp.New(
			restyhttp.WithTimeout(cfg.Timeout),
			restyhttp.WithStreaming(cfg.Streaming),
		)
		return client, noop, nil
	}

	store, err := replayhttp.Open(cfg.RecordPath)
	if err != nil {
		return nil, noop, fmt.Errorf("open record store: %w", err)
	}
	cleanup := func() { store.Close() }

	if cfg.ReplayOnly {
		return replayhttp.NewReplayer(store), cleanup, nil
	}

	inner := restyhttp.New(
		restyhttp.WithTimeout(cfg.Timeout),
		restyhttp.WithStreaming(cfg.Streaming),
	)
	return replayhttp.NewRecorder(inner, store), cleanup, nil
}
