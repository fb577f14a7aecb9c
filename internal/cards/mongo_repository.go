package cards

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/J0SEPH-K/CardTraders-infra/internal/mongox"
)

const collectionName = "uploadedCards"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collectionName)}
}

func (r *MongoRepository) Insert(ctx context.Context, card *Card) (interface{}, error) {
	res, err := r.coll.InsertOne(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("error inserting card: %w", mongox.TranslateError(err))
	}
	return res.InsertedID, nil
}
