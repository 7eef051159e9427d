package dfa

// incomingIndex lists, for every (state, unit) pair, the states whose
// transition on unit leads to that state. It describes the DFA as it was
// before minimization started and is never updated afterwards.
type incomingIndex struct {
	stride int

	// preds[t*stride+unit] holds the predecessors of t on unit, ascending.
	preds [][]StateID
}

func newIncomingIndex(d *DFA) *incomingIndex {
	idx := &incomingIndex{
		stride: d.stride,
		preds:  make([][]StateID, d.NumStates()*d.stride),
	}
	for s := StateID(0); int(s) < d.NumStates(); s++ {
		for unit, t := range d.row(s) {
			i := int(t)*d.stride + unit
			// s only grows, so every list stays sorted
			idx.preds[i] = append(idx.preds[i], s)
		}
	}
	return idx
}

// findIncomingTo writes into dest every state that reaches a member of set
// on unit.
func (idx *incomingIndex) findIncomingTo(unit int, set *StateSet, dest *StateSet) {
	dest.Clear()
	set.Iter(func(t StateID) {
		dest.ids = append(dest.ids, idx.preds[int(t)*idx.stride+unit]...)
	})
	dest.Canonicalize()
}
