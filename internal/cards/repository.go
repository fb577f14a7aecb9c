package cards

import "context"

// Repository appends card documents. Listings have no natural key, so there
// is no upsert path; every call stores a new document.
type Repository interface {
	Insert(ctx context.Context, card *Card) (interface{}, error)
}
