package dfa

import "fmt"

// Special summarizes where the special states of a DFA live so that a
// search loop can classify a state with a couple of comparisons.
//
// A range that does not exist has both bounds on DeadID. QuitID is DeadID
// when the DFA has no quit state.
type Special struct {
	MinMatch, MaxMatch StateID
	MinStart, MaxStart StateID
	QuitID             StateID
}

// Matches reports whether the DFA has any match state.
func (s Special) Matches() bool {
	return s.MinMatch != DeadID
}

// Starts reports whether the DFA has any start state other than the dead state.
func (s Special) Starts() bool {
	return s.MinStart != DeadID
}

// HasQuit reports whether the DFA has a quit state.
func (s Special) HasQuit() bool {
	return s.QuitID != DeadID
}

func (s Special) String() string {
	return fmt.Sprintf("Special(match=[%d,%d], start=[%d,%d], quit=%d)",
		s.MinMatch, s.MaxMatch, s.MinStart, s.MaxStart, s.QuitID)
}

// idRange accumulates the min and max of a set of ids.
type idRange struct {
	min, max StateID
	ok       bool
}

func (r *idRange) add(id StateID) {
	if !r.ok {
		r.min, r.max, r.ok = id, id, true
		return
	}
	r.min = min(r.min, id)
	r.max = max(r.max, id)
}

// bounds returns (DeadID, DeadID) for an empty range.
func (r *idRange) bounds() (StateID, StateID) {
	if !r.ok {
		return DeadID, DeadID
	}
	return r.min, r.max
}
