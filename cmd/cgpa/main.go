package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"cgpa-calculator/internal/config"
	"cgpa-calculator/internal/form"
	"cgpa-calculator/internal/observability"
	"cgpa-calculator/internal/prompt"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "cgpa:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := observability.InitLogger(cfg.Development); err != nil {
		return err
	}
	defer observability.SyncLogger()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracing(ctx)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			_ = shutdown(sctx)
		}()
	}

	client := form.NewClient(cfg.Endpoint, form.WithTimeout(cfg.HTTPTimeout))
	s := newSession(prompt.NewSurveyDriver(), client, form.WithLogger(observability.Logger))

	return s.run(ctx)
}
