package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/J0SEPH-K/CardTraders-infra/internal/mongox"
)

const collectionName = "users"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collectionName)}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("idx_userId").SetUnique(true),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}

// Upsert issues a single update-with-upsert so two concurrent seed runs can
// never both insert. UserID and CreatedAt live only in the $setOnInsert
// fragment; the $set fragment owns everything else.
func (r *MongoRepository) Upsert(ctx context.Context, u *User) (*UpsertResult, error) {

	filter := bson.M{"email": u.Email}

	set := bson.M{
		"username":         u.Username,
		"email":            u.Email,
		"password":         u.Password,
		"phone_num":        u.Phone,
		"address":          u.Address,
		"signup_date":      u.SignupDate,
		"suggested_num":    u.SuggestedNum,
		"starred_item":     u.StarredItem,
		"messages":         u.Messages,
		"premade_messages": u.PremadeMessages,
		"notification":     u.Notification,
		"blocked_users":    u.BlockedUsers,
		"pfp":              u.Pfp,
		"updatedAt":        u.UpdatedAt,
	}

	setOnInsert := bson.M{
		"userId":    u.UserID,
		"createdAt": u.CreatedAt,
	}

	res, err := r.coll.UpdateOne(ctx,
		filter,
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("error upserting user: %w", mongox.TranslateError(err))
	}

	if res.UpsertedID != nil {
		return &UpsertResult{Inserted: true, InsertedID: res.UpsertedID, UserID: u.UserID}, nil
	}

	// An existing record kept its original identifier; read it back so the
	// caller reports the one actually stored.
	var stored struct {
		UserID string `bson:"userId"`
	}
	err = r.coll.FindOne(ctx, filter,
		options.FindOne().SetProjection(bson.M{"userId": 1}),
	).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("error reading back user: %w", mongox.TranslateError(err))
	}

	return &UpsertResult{Inserted: false, UserID: stored.UserID}, nil
}
