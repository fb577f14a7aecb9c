package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEPH-K/CardTraders-infra/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.MongoURI)
	assert.Equal(t, "cardtraders", c.DatabaseName)
}

func TestValidate_MissingURI(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorMissingDSN))
}

func TestParseEnv_PrimaryVariable(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://primary:27017")
	t.Setenv("MONGO_URI", "mongodb://fallback:27017")
	t.Setenv("DB_NAME", "cardtraders_test")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "mongodb://primary:27017", c.MongoURI)
	assert.Equal(t, "cardtraders_test", c.DatabaseName)
	assert.NoError(t, c.Validate())
}

func TestParseEnv_FallbackVariable(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://fallback:27017")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "mongodb://fallback:27017", c.MongoURI)
	assert.Equal(t, "cardtraders", c.DatabaseName)
}

func TestUserOptions_LoadDefaults(t *testing.T) {
	var o UserOptions
	o.LoadDefaults()

	assert.Equal(t, "test@cardtraders.app", o.Email)
	assert.Equal(t, "Test1234!", o.Password)
	assert.Equal(t, "test-user", o.Username)
	assert.Equal(t, "010-0000-0000", o.Phone)
	assert.True(t, o.Notification)
	assert.Equal(t, []string{"안녕하세요", "구매 가능합니다"}, o.Premade)
	assert.Empty(t, o.Starred)
	assert.Empty(t, o.Blocked)
	assert.Equal(t, "", o.UserID)

	_, err := time.Parse("2006/01/02", o.SignupDate)
	assert.NoError(t, err, "signup date default must be YYYY/MM/DD")
}

func TestCardOptions_LoadDefaults(t *testing.T) {
	var o CardOptions
	o.LoadDefaults()

	assert.Equal(t, "pokemon", o.Category)
	assert.Equal(t, "Pikachu (Illustration Rare)", o.Name)
	assert.Equal(t, "Illustration Rare", o.Rarity)
	assert.Equal(t, "en", o.Language)
	assert.Equal(t, "SVP Black Star Promos", o.Set)
	assert.Equal(t, "SVP 085", o.CardNum)
}
