package dfa

import "slices"

// Automata builds small, finished DFAs. Every DFA it returns has all of
// its start configurations on the same state and no quit state.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a DFA with the empty language: only the dead state.
func (*Automata) MakeEmpty() *DFA {
	d := NewDFA(NewByteClasses())
	d.Finish()
	return d
}

// MakeAnyString
// Returns a DFA that reports pid for every input, the empty one included.
func (*Automata) MakeAnyString(pid PatternID) (*DFA, error) {
	d := NewDFA(NewByteClasses())
	s := d.CreateState()
	if err := d.SetMatch(s, pid); err != nil {
		return nil, err
	}
	if err := d.SetByteRangeTransition(s, 0, 255, s); err != nil {
		return nil, err
	}
	if err := d.SetAllStarts(s); err != nil {
		return nil, err
	}
	d.Finish()
	return d, nil
}

// MakeLiteral
// Returns a DFA that reports pid for exactly the input lit.
func (a *Automata) MakeLiteral(pid PatternID, lit []byte) (*DFA, error) {
	return a.MakeLiteralSet(pid, lit)
}

// MakeLiteralSet
// Returns a DFA that reports pid for exactly the inputs in lits. The DFA is
// a trie: literals that share a suffix do not share states, so it is
// usually far from minimal.
func (*Automata) MakeLiteralSet(pid PatternID, lits ...[]byte) (*DFA, error) {
	pids := make([]PatternID, len(lits))
	for i := range pids {
		pids[i] = pid
	}
	return makeTrie(lits, pids)
}

// MakeLiterals
// Returns a DFA that reports pattern i for input lits[i]. A literal given
// more than once reports all of its pattern ids, in order.
func (*Automata) MakeLiterals(lits ...[]byte) (*DFA, error) {
	pids := make([]PatternID, len(lits))
	for i := range pids {
		pids[i] = PatternID(i)
	}
	return makeTrie(lits, pids)
}

func makeTrie(lits [][]byte, pids []PatternID) (*DFA, error) {
	bcs := NewByteClassSet()
	size := 1
	for _, lit := range lits {
		for _, b := range lit {
			bcs.SetByte(b)
		}
		size += len(lit)
	}

	d := NewDFA(bcs.ByteClasses(), WithStateCapacity(size+1))
	root := d.CreateState()
	ends := make(map[StateID][]PatternID)
	for i, lit := range lits {
		s := root
		for _, b := range lit {
			next := d.Next(s, b)
			if next == DeadID {
				next = d.CreateState()
				if err := d.SetByteTransition(s, b, next); err != nil {
					return nil, err
				}
			}
			s = next
		}
		if !slices.Contains(ends[s], pids[i]) {
			ends[s] = append(ends[s], pids[i])
		}
	}
	for s, ps := range ends {
		if err := d.SetMatch(s, ps...); err != nil {
			return nil, err
		}
	}
	if err := d.SetAllStarts(root); err != nil {
		return nil, err
	}
	d.Finish()
	return d, nil
}
