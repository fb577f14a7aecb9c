package config

import (
	"flag"
	"os"

	"github.com/J0SEPH-K/CardTraders-infra/internal/flagx"
)

// parseUserFlags populates the shared Config and the user seeding overrides
// from command-line flags.
//
// Supported flags:
//
//	-uri string         MongoDB connection string (overrides MONGODB_URI)
//	-db string          database name
//	-email string       user email (natural key)
//	-password string    plaintext password to hash
//	-prompt-password    read the password from the terminal instead
//	-username string    display name
//	-phone string       phone number
//	-address string     address
//	-pfp-url string     profile image URL (stored as a URL reference)
//	-no-notification    disable the notification flag
//	-starred string     starred uploadedCards id, repeatable
//	-blocked string     blocked userId, repeatable
//	-premade string     premade message, repeatable (appends to defaults)
//	-signup-date string signup date, YYYY/MM/DD
//	-user-id string     force a userId (otherwise generated)
func parseUserFlags(cfg *Config, opts *UserOptions) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-uri", "-db", "-email", "-password", "-prompt-password",
		"-username", "-phone", "-address", "-pfp-url", "-no-notification",
		"-starred", "-blocked", "-premade", "-signup-date", "-user-id",
	})

	fs := flag.NewFlagSet("seeduser", flag.ContinueOnError)

	fs.StringVar(&cfg.MongoURI, "uri", cfg.MongoURI, "MongoDB connection string")
	fs.StringVar(&cfg.DatabaseName, "db", cfg.DatabaseName, "database name")

	fs.StringVar(&opts.Email, "email", opts.Email, "user email")
	fs.StringVar(&opts.Password, "password", opts.Password, "plaintext password to hash")
	fs.BoolVar(&opts.PromptPassword, "prompt-password", false, "read the password from the terminal")
	fs.StringVar(&opts.Username, "username", opts.Username, "username")
	fs.StringVar(&opts.Phone, "phone", opts.Phone, "phone number")
	fs.StringVar(&opts.Address, "address", opts.Address, "address")
	fs.StringVar(&opts.PfpURL, "pfp-url", opts.PfpURL, "profile image URL")
	noNotification := fs.Bool("no-notification", false, "disable notifications")
	fs.StringVar(&opts.SignupDate, "signup-date", opts.SignupDate, "signup date (YYYY/MM/DD)")
	fs.StringVar(&opts.UserID, "user-id", opts.UserID, "force a userId (otherwise generated)")

	starred := flagx.StringList(opts.Starred)
	blocked := flagx.StringList(opts.Blocked)
	premade := flagx.StringList(opts.Premade)
	fs.Var(&starred, "starred", "starred uploadedCards item id (repeatable)")
	fs.Var(&blocked, "blocked", "blocked userId (repeatable)")
	fs.Var(&premade, "premade", "premade message string (repeatable)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	opts.Starred = starred
	opts.Blocked = blocked
	opts.Premade = premade
	if *noNotification {
		opts.Notification = false
	}
}

// parseCardFlags populates the shared Config and the card seeding overrides
// from command-line flags.
//
// Supported flags:
//
//	-uri string       MongoDB connection string (overrides MONGODB_URI)
//	-db string        database name
//	-category string  card category
//	-name string      card display name
//	-rarity string    rarity tier
//	-language string  language code
//	-set string       source set name
//	-card-num string  set-specific card code
func parseCardFlags(cfg *Config, opts *CardOptions) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-uri", "-db", "-category", "-name", "-rarity", "-language", "-set", "-card-num",
	})

	fs := flag.NewFlagSet("seedcard", flag.ContinueOnError)

	fs.StringVar(&cfg.MongoURI, "uri", cfg.MongoURI, "MongoDB connection string")
	fs.StringVar(&cfg.DatabaseName, "db", cfg.DatabaseName, "database name")

	fs.StringVar(&opts.Category, "category", opts.Category, "card category")
	fs.StringVar(&opts.Name, "name", opts.Name, "card name")
	fs.StringVar(&opts.Rarity, "rarity", opts.Rarity, "rarity tier")
	fs.StringVar(&opts.Language, "language", opts.Language, "language code")
	fs.StringVar(&opts.Set, "set", opts.Set, "source set name")
	fs.StringVar(&opts.CardNum, "card-num", opts.CardNum, "set-specific card code")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
