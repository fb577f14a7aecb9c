package cards

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is the canonical document stored in the uploadedCards collection.
// Listings carry a numeric id from the uploadedCards sequence counter, stable
// across categories and separate from the storage-assigned ObjectID.
type Card struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SeqID     int64              `bson:"id"`
	Category  string             `bson:"category"`
	Name      string             `bson:"card_name"`
	Rarity    string             `bson:"rarity"`
	Language  string             `bson:"language"`
	Set       string             `bson:"set"`
	CardNum   string             `bson:"card_num"`
	CreatedAt time.Time          `bson:"createdAt"`
}
