package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// ReachableStates returns the states reachable from any start state. The
// dead state is always included.
func ReachableStates(d *DFA) *bitset.BitSet {
	seen := bitset.New(uint(d.NumStates()))
	workList := make([]StateID, 0)
	seen.Set(uint(DeadID))
	for _, id := range d.starts.All() {
		if !seen.Test(uint(id)) {
			seen.Set(uint(id))
			workList = append(workList, id)
		}
	}

	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		// quit states abort a search, nothing behind them is observable
		if d.IsQuit(state) {
			continue
		}
		for _, t := range d.row(state) {
			if !seen.Test(uint(t)) {
				seen.Set(uint(t))
				workList = append(workList, t)
			}
		}
	}
	return seen
}

// IsEmpty
// Returns true if no match state is reachable from any start state.
func IsEmpty(d *DFA) bool {
	if !d.special.Matches() {
		// Common case: no match states at all
		return true
	}
	reachable := ReachableStates(d)
	return reachable.IntersectionCardinality(d.isMatch) == 0
}
