package users

import "context"

// UpsertResult reports what a single upsert did.
type UpsertResult struct {
	// Inserted is true when no record existed for the email and a new one
	// was created.
	Inserted bool
	// InsertedID is the storage-assigned id of the new record, nil on update.
	InsertedID interface{}
	// UserID is the application identifier of the stored record after the
	// write: the freshly assigned one on insert, the pre-existing one on
	// update.
	UserID string
}

// Repository persists user documents keyed by normalized email.
type Repository interface {
	// EnsureIndexes creates the unique indexes on email and userId.
	// Creating an index that already exists is a no-op.
	EnsureIndexes(ctx context.Context) error

	// Upsert writes the document in one atomic operation keyed by email:
	// insert when no record matches, update otherwise. UserID and CreatedAt
	// are applied only on insert; every other field is overwritten.
	Upsert(ctx context.Context, user *User) (*UpsertResult, error)
}
