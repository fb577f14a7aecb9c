// Package common defines shared sentinel errors used across the seeding
// tools. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorDuplicateKey = errors.New("duplicate key")

	// Configuration errors.
	ErrorMissingDSN = errors.New("no MongoDB connection string configured (set MONGODB_URI)")

	// Validation errors.
	ErrorMalformedReference = errors.New("malformed reference id")
)
