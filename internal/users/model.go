package users

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the canonical document stored in the users collection. Field names
// match what the mobile backend reads, so the seeded record is
// indistinguishable from one created through the API.
type User struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	UserID          string               `bson:"userId"`
	Username        string               `bson:"username"`
	Email           string               `bson:"email"`
	Password        string               `bson:"password"` // bcrypt hash, never plaintext
	Phone           string               `bson:"phone_num"`
	Address         string               `bson:"address"`
	SignupDate      string               `bson:"signup_date"` // YYYY/MM/DD
	SuggestedNum    int                  `bson:"suggested_num"`
	StarredItem     []primitive.ObjectID `bson:"starred_item"` // refs into uploadedCards
	Messages        []string             `bson:"messages"`     // conversation metadata lives elsewhere
	PremadeMessages []string             `bson:"premade_messages"`
	Notification    bool                 `bson:"notification"`
	BlockedUsers    []string             `bson:"blocked_users"` // userId strings
	Pfp             ProfileImage         `bson:"pfp"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

// userIDPrefix makes generated application identifiers recognizable in the
// database next to storage-assigned ObjectIDs.
const userIDPrefix = "usr_"

// NewUserID synthesizes a fresh application identifier: the prefix plus the
// first 12 hex characters of a random UUID.
func NewUserID() string {
	id := uuid.New()
	return userIDPrefix + hex.EncodeToString(id[:])[:12]
}
