// Package mongox owns the MongoDB client handle: connecting, ping on
// startup, and translating driver errors to the shared sentinel values.
package mongox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/J0SEPH-K/CardTraders-infra/internal/common"
)

const connectTimeout = 10 * time.Second

// Connect establishes a client for the given connection string and verifies
// the deployment is reachable with a ping. The caller owns the returned
// client and must Disconnect it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// TranslateError maps driver errors onto the shared sentinels so callers can
// match with errors.Is without importing the driver.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", common.ErrorDuplicateKey, err)
	}
	return err
}
