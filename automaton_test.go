package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDFA(t *testing.T) {
	d := NewDFA(SingletonByteClasses(), WithStateCapacity(8))
	assert.Equal(t, 1, d.NumStates())
	assert.Equal(t, 256, d.AlphabetLen())
	assert.True(t, d.IsDead(DeadID))
	for b := 0; b < 256; b++ {
		assert.Equal(t, DeadID, d.Next(DeadID, byte(b)))
	}

	s := d.CreateState()
	assert.Equal(t, StateID(1), s)
	assert.Equal(t, 2, d.NumStates())
	assert.Equal(t, DeadID, d.Next(s, 'x'))

	d.Finish()
	assert.NoError(t, d.Validate())
	assert.False(t, d.Special().Matches())
	assert.False(t, d.Special().Starts())
	assert.False(t, d.Special().HasQuit())
}

func TestDFAConstructionErrors(t *testing.T) {
	bcs := NewByteClassSet()
	bcs.SetByte('a')
	d := NewDFA(bcs.ByteClasses())
	s := d.CreateState()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"transition from dead", d.SetTransition(DeadID, 0, s), ErrDeadState},
		{"transition from unknown", d.SetTransition(9, 0, s), ErrInvalidState},
		{"transition to unknown", d.SetTransition(s, 0, 9), ErrInvalidState},
		{"unit out of range", d.SetTransition(s, 3, s), ErrInvalidUnit},
		{"match on dead", d.SetMatch(DeadID, 0), ErrDeadState},
		{"match without patterns", d.SetMatch(s), ErrNoPatterns},
		{"quit on dead", d.SetQuit(DeadID), ErrDeadState},
		{"start on unknown", d.SetStart(DefaultStartConfig(), 7), ErrInvalidState},
		{"start with bad kind", d.SetStart(StartConfig{Kind: StartKind(99)}, s), ErrInconsistent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestDFATransitions(t *testing.T) {
	bcs := NewByteClassSet()
	bcs.SetRange('0', '9')
	d := NewDFA(bcs.ByteClasses())
	s := d.CreateState()
	m := d.CreateState()

	require.NoError(t, d.SetByteRangeTransition(s, '0', '9', m))
	require.NoError(t, d.SetByteTransition(m, '5', m))
	require.NoError(t, d.SetMatch(m, 3))

	assert.Equal(t, m, d.Next(s, '0'))
	assert.Equal(t, m, d.Next(s, '7'))
	assert.Equal(t, DeadID, d.Next(s, 'a'))
	// '5' shares its unit with every other digit
	assert.Equal(t, m, d.Next(m, '1'))
	classes := d.ByteClasses()
	assert.Equal(t, m, d.NextClass(m, classes.Get('9')))
	assert.Equal(t, []PatternID{3}, d.MatchPatterns(m))
	assert.Nil(t, d.MatchPatterns(s))
}

func TestDFAFinish(t *testing.T) {
	d := NewDFA(NewByteClasses())
	a := d.CreateState()
	b := d.CreateState()
	c := d.CreateState()
	q := d.CreateState()
	q2 := d.CreateState()
	require.NoError(t, d.SetMatch(c, 1))
	require.NoError(t, d.SetMatch(a, 0))
	require.NoError(t, d.SetQuit(q2))
	require.NoError(t, d.SetQuit(q))
	require.NoError(t, d.SetStart(DefaultStartConfig(), b))
	require.NoError(t, d.SetStart(StartConfig{Kind: StartWord, Anchored: true}, c))
	d.Finish()

	assert.Equal(t, Special{
		MinMatch: a, MaxMatch: c,
		MinStart: b, MaxStart: c,
		QuitID: q,
	}, d.Special())
	assert.NoError(t, d.Validate())
}

func TestDFAValidate(t *testing.T) {
	build := func() *DFA {
		d := NewDFA(NewByteClasses())
		s := d.CreateState()
		m := d.CreateState()
		_ = d.SetTransition(s, 0, m)
		_ = d.SetMatch(m, 0)
		_ = d.SetAllStarts(s)
		d.Finish()
		return d
	}
	require.NoError(t, build().Validate())

	tests := []struct {
		name   string
		mutate func(d *DFA)
	}{
		{"dead state leaves", func(d *DFA) { d.trans[0] = 1 }},
		{"dead state matches", func(d *DFA) { d.isMatch.Set(0) }},
		{"transition out of range", func(d *DFA) { d.trans[1] = 17 }},
		{"match flag without patterns", func(d *DFA) { d.isMatch.Set(1) }},
		{"match and quit", func(d *DFA) { d.isQuit.Set(2); d.special.QuitID = 2 }},
		{"stale special", func(d *DFA) { _ = d.SetMatch(1, 4) }},
		{"quit without summary", func(d *DFA) { d.isQuit.Set(1) }},
		{"start outside range", func(d *DFA) { d.starts.Set(DefaultStartConfig(), 2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := build()
			tt.mutate(d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestDFAClone(t *testing.T) {
	d, err := defaultAutomata.MakeLiterals([]byte("ab"), []byte("ac"))
	require.NoError(t, err)
	c := d.Clone()
	assert.Equal(t, d.String(), c.String())

	s := c.CreateState()
	require.NoError(t, c.SetMatch(s, 9))
	require.NoError(t, c.SetAllStarts(s))
	c.Finish()

	assert.NotEqual(t, d.NumStates(), c.NumStates())
	assert.NotEqual(t, d.Start(DefaultStartConfig()), c.Start(DefaultStartConfig()))
	assert.False(t, d.IsMatch(s))
	assert.NoError(t, d.Validate())
	assert.NoError(t, c.Validate())
}

func TestDFAPatternMapIsCopy(t *testing.T) {
	d, err := defaultAutomata.MakeLiteral(5, []byte("x"))
	require.NoError(t, err)
	pm := d.PatternMap()
	require.Len(t, pm, 1)
	for id := range pm {
		pm[id][0] = 42
		assert.Equal(t, []PatternID{5}, d.MatchPatterns(id))
	}
}

func TestDFAString(t *testing.T) {
	d, err := defaultAutomata.MakeLiteral(0, []byte("a"))
	require.NoError(t, err)
	s := d.String()
	assert.Contains(t, s, "DFA(states=3")
	assert.Contains(t, s, "=> [0]")
	assert.Contains(t, s, "start unanchored/Text: 1")
}

func TestSwapAndTruncateStates(t *testing.T) {
	d := NewDFA(NewByteClasses())
	a := d.CreateState()
	b := d.CreateState()
	require.NoError(t, d.SetTransition(b, 0, a))
	require.NoError(t, d.SetQuit(b))

	d.swapStates(a, b)
	assert.Equal(t, a, d.NextClass(a, 0))
	assert.True(t, d.IsQuit(a))
	assert.False(t, d.IsQuit(b))

	d.truncateStates(2)
	assert.Equal(t, 2, d.NumStates())
	assert.Equal(t, uint(1), d.isQuit.Count())

	// a truncated slot comes back clean
	c := d.CreateState()
	assert.Equal(t, DeadID, d.NextClass(c, 0))
	assert.False(t, d.IsQuit(c))
}
