package main

import (
	"context"
	"log"
	"os"

	"github.com/J0SEPH-K/CardTraders-infra/internal/config"
	"github.com/J0SEPH-K/CardTraders-infra/internal/logging"
	"github.com/J0SEPH-K/CardTraders-infra/internal/seeder"
)

func main() {
	if err := run(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {

	ctx := context.Background()
	cfg, opts := config.LoadCardSeed()

	app, err := seeder.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	return app.SeedCard(ctx, opts)
}
