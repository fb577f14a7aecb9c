package cards

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an append-only in-memory card store. Used in tests.
type MemoryRepository struct {
	mu    sync.Mutex
	cards []*Card
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(ctx context.Context, card *Card) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *card
	stored.ID = primitive.NewObjectID()
	r.cards = append(r.cards, &stored)
	return stored.ID, nil
}

// All returns the stored cards in insertion order.
func (r *MemoryRepository) All() []*Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Card, len(r.cards))
	copy(out, r.cards)
	return out
}
