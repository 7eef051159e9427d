package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Minimize rewrites d in place into the DFA with the fewest states that
// behaves exactly like d: every input reaches a state with the same match
// pattern ids and the same quit flag, from every start configuration.
//
// Minimize uses Hopcroft's algorithm. Match states reporting different
// pattern ids are never merged, and neither are quit and non-quit states.
// All state ids change, except that the dead state stays DeadID. d must
// satisfy Validate; a DFA that does not is a programming error and panics.
func Minimize(d *DFA) {
	if err := d.Validate(); err != nil {
		invariant(false, fmt.Sprintf("minimize: invalid DFA: %v", err))
	}
	if d.NumStates() <= 1 {
		// only the dead state
		return
	}

	before := d.NumStates()
	m := newMinimizer(d)
	tracer().Debugf("minimize: %d states, %d units, %d initial partitions",
		before, d.stride, len(m.partitions))
	m.refine()
	m.rewrite()
	tracer().Infof("minimize: %d states reduced to %d", before, d.NumStates())
}

type minimizer struct {
	dfa      *DFA
	incoming *incomingIndex
	arena    *setArena

	// Current partitions; every state is in exactly one of them.
	partitions []setHandle

	// Splitters still to process. A handle is only live while its bit in
	// waitingSet is set, popping skips handles that were retired.
	waiting    []setHandle
	waitingSet *bitset.BitSet
}

func newMinimizer(d *DFA) *minimizer {
	m := &minimizer{
		dfa:        d,
		incoming:   newIncomingIndex(d),
		arena:      &setArena{},
		waitingSet: bitset.New(uint(2 * d.NumStates())),
	}
	for _, set := range initialPartitions(d) {
		h := m.arena.add(set)
		m.partitions = append(m.partitions, h)
		m.pushWaiting(h)
	}
	return m
}

// initialPartitions separates the states that are known to differ before
// looking at any transition: one partition per distinct multiset of pattern
// ids, one for the quit states and one for everything else.
func initialPartitions(d *DFA) []*StateSet {
	byPatterns := NewHashMap[int](WithCapacity(len(d.patterns)))
	var matching []*StateSet
	quit := &StateSet{}
	other := &StateSet{}

	for id := StateID(0); int(id) < d.NumStates(); id++ {
		switch {
		case d.IsMatch(id):
			key := newFrozenPatternSet(d.patterns[id])
			i, ok := byPatterns.Get(key)
			if !ok {
				i = len(matching)
				matching = append(matching, &StateSet{})
				byPatterns.Set(key, i)
			}
			matching[i].Add(id)
		case d.IsQuit(id):
			quit.Add(id)
		default:
			other.Add(id)
		}
	}

	sets := make([]*StateSet, 0, len(matching)+2)
	sets = append(sets, other)
	if !quit.IsEmpty() {
		sets = append(sets, quit)
	}
	sets = append(sets, matching...)
	// ids were added in ascending order, so the sets are already canonical
	return sets
}

func (m *minimizer) pushWaiting(h setHandle) {
	m.waiting = append(m.waiting, h)
	m.waitingSet.Set(uint(h))
}

// popWaiting returns the next live splitter.
func (m *minimizer) popWaiting() (setHandle, bool) {
	for len(m.waiting) > 0 {
		h := m.waiting[len(m.waiting)-1]
		m.waiting = m.waiting[:len(m.waiting)-1]
		if m.waitingSet.Test(uint(h)) {
			m.waitingSet.Clear(uint(h))
			return h, true
		}
	}
	return 0, false
}

// refine splits partitions until no splitter is left, at which point the
// partitions are the equivalence classes of the DFA.
func (m *minimizer) refine() {
	var incoming, x, y StateSet
	var newparts []setHandle
	splits := 0

	for {
		h, ok := m.popWaiting()
		if !ok {
			break
		}
		splitter := m.arena.get(h)
		for unit := 0; unit < m.dfa.stride; unit++ {
			m.incoming.findIncomingTo(unit, splitter, &incoming)
			if incoming.IsEmpty() {
				continue
			}

			newparts = newparts[:0]
			for _, p := range m.partitions {
				part := m.arena.get(p)
				part.Intersection(&incoming, &x)
				if x.IsEmpty() {
					newparts = append(newparts, p)
					continue
				}
				part.Subtract(&incoming, &y)
				if y.IsEmpty() {
					newparts = append(newparts, p)
					continue
				}

				hx := m.arena.add(x.DeepClone())
				hy := m.arena.add(y.DeepClone())
				newparts = append(newparts, hx, hy)
				splits++

				if m.waitingSet.Test(uint(p)) {
					// p is replaced by both halves
					m.waitingSet.Clear(uint(p))
					m.pushWaiting(hx)
					m.pushWaiting(hy)
				} else if x.Len() <= y.Len() {
					m.pushWaiting(hx)
				} else {
					m.pushWaiting(hy)
				}
			}
			m.partitions, newparts = newparts, m.partitions
		}
	}
	tracer().Debugf("minimize: %d partitions after %d splits", len(m.partitions), splits)
}
