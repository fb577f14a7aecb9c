// Package refs validates cross-collection reference identifiers. A reference
// is a 24-character hex ObjectID naming a document in another collection; the
// format is checked here, existence is not.
package refs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J0SEPH-K/CardTraders-infra/internal/common"
	"github.com/J0SEPH-K/CardTraders-infra/internal/logging"
)

// Validate parses a single candidate reference id.
func Validate(candidate string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(candidate)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", common.ErrorMalformedReference, candidate)
	}
	return id, nil
}

// Filter returns the well-formed ids from candidates, preserving input
// order. Each rejected candidate produces one warning on the logger; a
// rejection never fails the call.
func Filter(ctx context.Context, log logging.Logger, candidates []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(candidates))
	for _, c := range candidates {
		id, err := Validate(c)
		if err != nil {
			log.Warn(ctx, "skipping invalid reference id", "candidate", c)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
