// Package seeder wires configuration, storage, and the entity services into
// runnable seeding workflows.
package seeder

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/J0SEPH-K/CardTraders-infra/internal/cards"
	"github.com/J0SEPH-K/CardTraders-infra/internal/config"
	"github.com/J0SEPH-K/CardTraders-infra/internal/counters"
	"github.com/J0SEPH-K/CardTraders-infra/internal/logging"
	"github.com/J0SEPH-K/CardTraders-infra/internal/mongox"
	"github.com/J0SEPH-K/CardTraders-infra/internal/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	client      *mongo.Client
	userService *users.Service
	cardService *cards.Service
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := mongox.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db := client.Database(cfg.DatabaseName)

	us := users.NewService(users.NewMongoRepository(db), logger)
	cs := cards.NewService(cards.NewMongoRepository(db), counters.NewMongoRepository(db))

	return &App{config: cfg, logger: logger, client: client, userService: us, cardService: cs}, nil
}

func (app *App) Close(ctx context.Context) error {
	return app.client.Disconnect(ctx)
}

// SeedUser runs the user upsert workflow once and logs the outcome.
func (app *App) SeedUser(ctx context.Context, opts *config.UserOptions) error {

	res, err := app.userService.Seed(ctx, opts)
	if err != nil {
		return err
	}

	if res.Inserted {
		app.logger.Info(ctx, "inserted user",
			"_id", fmt.Sprintf("%v", res.InsertedID), "email", res.Email, "userId", res.UserID)
	} else {
		app.logger.Info(ctx, "updated user", "email", res.Email, "userId", res.UserID)
	}

	return nil
}

// SeedCard runs the card insert workflow once and logs the inserted document.
func (app *App) SeedCard(ctx context.Context, opts *config.CardOptions) error {

	card, err := app.cardService.Seed(ctx, opts)
	if err != nil {
		return err
	}

	app.logger.Info(ctx, "inserted card",
		"id", card.SeqID, "category", card.Category, "card_name", card.Name,
		"set", card.Set, "card_num", card.CardNum)

	return nil
}
