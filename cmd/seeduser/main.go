package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

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
	cfg, opts := config.LoadUserSeed()

	if opts.PromptPassword {
		fmt.Println("Enter password")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("error reading password: %w", err)
		}
		opts.Password = string(pw)
	}

	app, err := seeder.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	return app.SeedUser(ctx, opts)
}
