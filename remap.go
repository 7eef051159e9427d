package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// rewrite collapses every partition into its smallest state and renumbers
// the survivors densely, in the order of their old ids.
func (m *minimizer) rewrite() {
	d := m.dfa
	n := d.NumStates()

	// stateToRep[id] is the smallest id of the partition holding id.
	stateToRep := make([]StateID, n)
	covered := bitset.New(uint(n))
	for _, h := range m.partitions {
		part := m.arena.get(h)
		rep := part.Min()
		repPatterns := newFrozenPatternSet(d.patterns[rep])
		part.Iter(func(id StateID) {
			invariant(int(id) < n, fmt.Sprintf("partition holds state %d of %d", id, n))
			invariant(!covered.Test(uint(id)), fmt.Sprintf("state %d is in two partitions", id))
			covered.Set(uint(id))
			invariant(d.IsQuit(id) == d.IsQuit(rep),
				fmt.Sprintf("states %d and %d disagree on quit", rep, id))
			invariant(d.IsMatch(id) == d.IsMatch(rep),
				fmt.Sprintf("states %d and %d disagree on match", rep, id))
			if d.IsMatch(id) && id != rep {
				invariant(repPatterns.Equals(newFrozenPatternSet(d.patterns[id])),
					fmt.Sprintf("states %d and %d report different patterns", rep, id))
			}
			stateToRep[id] = rep
		})
	}
	invariant(covered.Count() == uint(n), fmt.Sprintf("%d of %d states in no partition", uint(n)-covered.Count(), n))

	minimalIDs := make([]StateID, n)
	count := 0
	for id := StateID(0); int(id) < n; id++ {
		if stateToRep[id] == id {
			minimalIDs[id] = StateID(count)
			count++
		}
	}
	remap := func(old StateID) StateID {
		return minimalIDs[stateToRep[old]]
	}
	invariant(remap(DeadID) == DeadID, "dead state was renumbered")

	// Needs the flags at their old positions, so it runs before any swap.
	special := remapSpecial(d, remap)

	patterns := make(map[StateID][]PatternID, len(d.patterns))
	for id, pids := range d.patterns {
		if stateToRep[id] == id {
			patterns[remap(id)] = pids
		}
	}

	// A representative never moves up: minimalIDs[id] <= id, and every slot
	// below id either already holds its final state or holds a state that
	// is dropped.
	for id := StateID(0); int(id) < n; id++ {
		if stateToRep[id] != id {
			continue
		}
		d.remapState(id, remap)
		d.swapStates(id, minimalIDs[id])
	}
	d.truncateStates(count)
	d.starts.remap(remap)
	d.setPatternMap(patterns)
	d.special = special

	if err := d.Validate(); err != nil {
		invariant(false, fmt.Sprintf("minimize: rewritten DFA is invalid: %v", err))
	}
}

// remapSpecial computes the summary ranges of the minimized DFA. Merging
// can move which id is extremal, so every id of an old range that had the
// property is remapped and the bounds are taken again.
func remapSpecial(d *DFA, remap func(StateID) StateID) Special {
	old := d.special
	var matches, starts idRange
	if old.Matches() {
		for id := old.MinMatch; id <= old.MaxMatch; id++ {
			if d.IsMatch(id) {
				matches.add(remap(id))
			}
		}
	}
	if old.Starts() {
		isStart := bitset.New(uint(d.NumStates()))
		for _, id := range d.starts.All() {
			isStart.Set(uint(id))
		}
		for id := old.MinStart; id <= old.MaxStart; id++ {
			if !isStart.Test(uint(id)) {
				continue
			}
			// a start state that collapsed into the dead state is no longer special
			if nid := remap(id); nid != DeadID {
				starts.add(nid)
			}
		}
	}

	var sp Special
	sp.MinMatch, sp.MaxMatch = matches.bounds()
	sp.MinStart, sp.MaxStart = starts.bounds()
	sp.QuitID = DeadID
	if old.HasQuit() {
		sp.QuitID = remap(old.QuitID)
	}
	return sp
}
