package flagx

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-email", "a@x.com", "-unknown", "zzz", "-db", "cardtraders"}

	got := FilterArgs(args, []string{"-email", "-db"})

	assert.Equal(t, []string{"-email", "a@x.com", "-db", "cardtraders"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"-email=a@x.com", "-unknown=zzz"}

	got := FilterArgs(args, []string{"-email"})

	assert.Equal(t, []string{"-email=a@x.com"}, got)
}

func TestFilterArgs_RepeatedFlag(t *testing.T) {
	args := []string{"-starred", "aaa", "-starred", "bbb", "-other", "x"}

	got := FilterArgs(args, []string{"-starred"})

	assert.Equal(t, []string{"-starred", "aaa", "-starred", "bbb"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.Empty(t, got)
}

func TestStringList_AppendsInOrder(t *testing.T) {
	var list StringList

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&list, "premade", "premade message (repeatable)")

	err := fs.Parse([]string{"-premade", "first", "-premade", "second"})
	require.NoError(t, err)

	assert.Equal(t, StringList{"first", "second"}, list)
}

func TestStringList_KeepsDefaults(t *testing.T) {
	list := StringList{"안녕하세요"}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&list, "premade", "premade message (repeatable)")

	err := fs.Parse([]string{"-premade", "extra"})
	require.NoError(t, err)

	assert.Equal(t, StringList{"안녕하세요", "extra"}, list)
}
