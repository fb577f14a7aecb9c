package cards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEPH-K/CardTraders-infra/internal/config"
	"github.com/J0SEPH-K/CardTraders-infra/internal/counters"
)

func defaultOptions() *config.CardOptions {
	opts := &config.CardOptions{}
	opts.LoadDefaults()
	return opts
}

// --- fakes ---

type failingCounter struct {
	err error
}

func (f *failingCounter) Next(ctx context.Context, name string) (int64, error) {
	return 0, f.err
}

type failingRepo struct {
	err error
}

func (f *failingRepo) Insert(ctx context.Context, card *Card) (interface{}, error) {
	return nil, f.err
}

func TestSeed_SequentialIDs(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, counters.NewMemoryRepository())
	ctx := context.Background()

	english := defaultOptions()

	korean := defaultOptions()
	korean.Name = "Pikachu ex"
	korean.Language = "ko"
	korean.CardNum = "SVP 084"

	japanese := defaultOptions()
	japanese.Language = "ja"

	for i, opts := range []*config.CardOptions{english, korean, japanese} {
		card, err := svc.Seed(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), card.SeqID, "ids are contiguous regardless of attributes")
	}

	assert.Len(t, repo.All(), 3)
}

func TestSeed_DocumentFields(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, counters.NewMemoryRepository())
	ctx := context.Background()

	card, err := svc.Seed(ctx, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, int64(1), card.SeqID)
	assert.Equal(t, "pokemon", card.Category)
	assert.Equal(t, "Pikachu (Illustration Rare)", card.Name)
	assert.Equal(t, "Illustration Rare", card.Rarity)
	assert.Equal(t, "en", card.Language)
	assert.Equal(t, "SVP Black Star Promos", card.Set)
	assert.Equal(t, "SVP 085", card.CardNum)
	assert.False(t, card.CreatedAt.IsZero())
	assert.False(t, card.ID.IsZero(), "storage id is reported back")
}

func TestSeed_CounterFailureIsFatal(t *testing.T) {
	boom := errors.New("counters unavailable")
	svc := NewService(NewMemoryRepository(), &failingCounter{err: boom})

	_, err := svc.Seed(context.Background(), defaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestSeed_InsertFailureIsFatal(t *testing.T) {
	boom := errors.New("storage unavailable")
	svc := NewService(&failingRepo{err: boom}, counters.NewMemoryRepository())

	_, err := svc.Seed(context.Background(), defaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
