package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/J0SEPH-K/CardTraders-infra/internal/auth"
	"github.com/J0SEPH-K/CardTraders-infra/internal/config"
	"github.com/J0SEPH-K/CardTraders-infra/internal/logging"
	"github.com/J0SEPH-K/CardTraders-infra/internal/refs"
)

// SeedResult is the observable outcome of one seed run.
type SeedResult struct {
	Inserted   bool
	InsertedID interface{}
	Email      string
	UserID     string
}

// Service materializes exactly one user document per email.
type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Seed builds the canonical user document from opts and upserts it keyed by
// the lowercased email. Running it again with the same email updates the
// record in place, keeping its userId and createdAt.
func (s *Service) Seed(ctx context.Context, opts *config.UserOptions) (*SeedResult, error) {

	if err := s.repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	userID := opts.UserID
	if userID == "" {
		userID = NewUserID()
	}

	pwHash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	starred := refs.Filter(ctx, s.log, opts.Starred)

	pfp := NoImage()
	if opts.PfpURL != "" {
		pfp = ImageByURL(opts.PfpURL)
	}

	now := time.Now().UTC()

	user := &User{
		UserID:          userID,
		Username:        opts.Username,
		Email:           strings.ToLower(strings.TrimSpace(opts.Email)),
		Password:        pwHash,
		Phone:           opts.Phone,
		Address:         opts.Address,
		SignupDate:      opts.SignupDate,
		SuggestedNum:    0,
		StarredItem:     starred,
		Messages:        []string{},
		PremadeMessages: opts.Premade,
		Notification:    opts.Notification,
		BlockedUsers:    append([]string{}, opts.Blocked...),
		Pfp:             pfp,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	return &SeedResult{
		Inserted:   res.Inserted,
		InsertedID: res.InsertedID,
		Email:      user.Email,
		UserID:     res.UserID,
	}, nil
}
