package refs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J0SEPH-K/CardTraders-infra/internal/common"
	"github.com/J0SEPH-K/CardTraders-infra/internal/logging"
)

func TestValidate(t *testing.T) {
	id, err := Validate("deadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, "deadbeefdeadbeefdeadbeef", id.Hex())

	_, err = Validate("not-an-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorMalformedReference))
}

func TestFilter_DropsMalformedKeepsOrder(t *testing.T) {
	log := logging.NewCaptureLogger()

	ids := Filter(context.Background(), log, []string{
		"deadbeefdeadbeefdeadbeef",
		"not-an-id",
		"abad1deaabad1deaabad1dea",
	})

	require.Len(t, ids, 2)
	assert.Equal(t, "deadbeefdeadbeefdeadbeef", ids[0].Hex())
	assert.Equal(t, "abad1deaabad1deaabad1dea", ids[1].Hex())

	warns := log.ByLevel("WARN")
	require.Len(t, warns, 1, "exactly one diagnostic per malformed candidate")
}

func TestFilter_Empty(t *testing.T) {
	log := logging.NewCaptureLogger()

	ids := Filter(context.Background(), log, nil)

	assert.Empty(t, ids)
	assert.Empty(t, log.Records)
}
