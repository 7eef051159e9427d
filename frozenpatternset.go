package dfa

import "slices"

var _ Hashable = &frozenPatternSet{}

// frozenPatternSet is the sorted multiset of pattern ids reported by a match
// state. Two match states land in the same initial partition exactly when
// their frozenPatternSets are equal, whatever order the ids were given in.
type frozenPatternSet struct {
	values   []PatternID
	hashCode uint64
}

func newFrozenPatternSet(pids []PatternID) *frozenPatternSet {
	values := slices.Clone(pids)
	slices.Sort(values)

	// a sum of mixed ids, so equal multisets hash alike in any order
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix32(uint32(v)))
	}
	return &frozenPatternSet{values: values, hashCode: mix64(h)}
}

func (f *frozenPatternSet) Hash() uint64 {
	return f.hashCode
}

func (f *frozenPatternSet) Equals(other Hashable) bool {
	o, ok := other.(*frozenPatternSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == nil && o == nil
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}
