package cards

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J0SEPH-K/CardTraders-infra/internal/config"
	"github.com/J0SEPH-K/CardTraders-infra/internal/counters"
)

// Service appends card listings with fresh sequence ids.
type Service struct {
	repo    Repository
	counter counters.Repository
}

func NewService(repo Repository, counter counters.Repository) *Service {
	return &Service{repo: repo, counter: counter}
}

// Seed takes the next uploadedCards sequence value, builds the card document
// from opts, and inserts it. A counter or insert failure aborts the run.
func (s *Service) Seed(ctx context.Context, opts *config.CardOptions) (*Card, error) {

	seq, err := s.counter.Next(ctx, counters.CardSequence)
	if err != nil {
		return nil, err
	}

	card := &Card{
		SeqID:     seq,
		Category:  opts.Category,
		Name:      opts.Name,
		Rarity:    opts.Rarity,
		Language:  opts.Language,
		Set:       opts.Set,
		CardNum:   opts.CardNum,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("error seeding card: %w", err)
	}

	if oid, ok := id.(primitive.ObjectID); ok {
		card.ID = oid
	}

	return card, nil
}
