package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeEmpty(t *testing.T) {
	d := defaultAutomata.MakeEmpty()
	assert.Equal(t, 1, d.NumStates())
	assert.Equal(t, Special{}, d.Special())
	assert.False(t, RunString(d, ""))
	assert.NoError(t, d.Validate())
}

func TestMakeAnyString(t *testing.T) {
	d, err := defaultAutomata.MakeAnyString(7)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
	for _, s := range []string{"", "a", "\x00\xff", "hello world"} {
		pids, ok, quit := Run(d, DefaultStartConfig(), []byte(s))
		assert.True(t, ok, s)
		assert.False(t, quit, s)
		assert.Equal(t, []PatternID{7}, pids)
	}
}

func TestMakeLiteral(t *testing.T) {
	d, err := defaultAutomata.MakeLiteral(2, []byte("foo"))
	require.NoError(t, err)
	assert.Equal(t, 5, d.NumStates())
	// f, o and the three gaps around them
	assert.Equal(t, 5, d.AlphabetLen())
	assert.True(t, RunString(d, "foo"))
	assert.False(t, RunString(d, "fo"))
	assert.False(t, RunString(d, "fooo"))
	assert.False(t, RunString(d, "bar"))

	for _, cfg := range AllStartConfigs() {
		assert.Equal(t, StateID(1), d.Start(cfg), cfg.String())
	}
}

func TestMakeLiteralSet(t *testing.T) {
	d, err := defaultAutomata.MakeLiteralSet(4, []byte("ab"), []byte("a"), []byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 4, d.NumStates())
	assert.Equal(t, []PatternID{4}, d.MatchPatterns(d.Next(d.Next(1, 'a'), 'b')))
	assert.True(t, RunString(d, "a"))
	assert.True(t, RunString(d, "ab"))
	assert.False(t, RunString(d, "b"))
}

func TestMakeLiterals(t *testing.T) {
	d, err := defaultAutomata.MakeLiterals([]byte("x"), []byte("xy"), []byte("x"))
	require.NoError(t, err)
	pids, ok, _ := Run(d, DefaultStartConfig(), []byte("x"))
	assert.True(t, ok)
	assert.Equal(t, []PatternID{0, 2}, pids)
	pids, ok, _ = Run(d, DefaultStartConfig(), []byte("xy"))
	assert.True(t, ok)
	assert.Equal(t, []PatternID{1}, pids)
}

func TestMakeLiteralsEmptyString(t *testing.T) {
	d, err := defaultAutomata.MakeLiterals([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
	assert.True(t, RunString(d, ""))
	assert.False(t, RunString(d, "a"))
	assert.Equal(t, StateID(1), d.Special().MinStart)
	assert.Equal(t, StateID(1), d.Special().MinMatch)
}
