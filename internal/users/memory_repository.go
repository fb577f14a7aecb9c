package users

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J0SEPH-K/CardTraders-infra/internal/common"
)

// MemoryRepository keeps user documents in a map keyed by normalized email,
// mirroring the Mongo repository's upsert and uniqueness semantics. Used in
// tests.
type MemoryRepository struct {
	mu    sync.Mutex
	byKey map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byKey: make(map[string]*User)}
}

func (r *MemoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, u *User) (*UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byKey[u.Email]
	if !ok {
		for _, other := range r.byKey {
			if other.UserID == u.UserID {
				return nil, common.ErrorDuplicateKey
			}
		}

		stored := *u
		stored.ID = primitive.NewObjectID()
		r.byKey[u.Email] = &stored
		return &UpsertResult{Inserted: true, InsertedID: stored.ID, UserID: stored.UserID}, nil
	}

	updated := *u
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	r.byKey[u.Email] = &updated

	return &UpsertResult{Inserted: false, UserID: existing.UserID}, nil
}

// Get returns the stored document for a normalized email, or ErrorNotFound.
func (r *MemoryRepository) Get(email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byKey[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

// Len returns the number of stored documents.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byKey)
}
