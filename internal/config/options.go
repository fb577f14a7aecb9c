package config

import "time"

// UserOptions carries the per-run field overrides for the user seeding
// command. Every field has a default matching the canonical test user, so a
// bare invocation always produces a usable record.
type UserOptions struct {
	Email          string
	Password       string
	PromptPassword bool
	Username       string
	Phone          string
	Address        string
	PfpURL         string
	Notification   bool
	Starred        []string
	Blocked        []string
	Premade        []string
	SignupDate     string
	UserID         string
}

func (o *UserOptions) LoadDefaults() {
	o.Email = "test@cardtraders.app"
	o.Password = "Test1234!"
	o.Username = "test-user"
	o.Phone = "010-0000-0000"
	o.Address = "서울특별시 어딘가 123"
	o.Notification = true
	o.Premade = []string{"안녕하세요", "구매 가능합니다"}
	o.SignupDate = time.Now().Format("2006/01/02")
}

// CardOptions carries the per-run field overrides for the card seeding
// command. Defaults describe the canonical promo card.
type CardOptions struct {
	Category string
	Name     string
	Rarity   string
	Language string
	Set      string
	CardNum  string
}

func (o *CardOptions) LoadDefaults() {
	o.Category = "pokemon"
	o.Name = "Pikachu (Illustration Rare)"
	o.Rarity = "Illustration Rare"
	o.Language = "en"
	o.Set = "SVP Black Star Promos"
	o.CardNum = "SVP 085"
}
