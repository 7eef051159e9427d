package dfa

import "slices"

// StateSet is an ordered set of state ids.
//
// Add appends without keeping order; Canonicalize sorts and removes
// duplicates and has to run before the set is compared, intersected or asked
// for its minimum. Clear keeps the backing storage so a scratch set can be
// reused across iterations.
type StateSet struct {
	ids []StateID
}

func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{ids: slices.Clone(ids)}
	s.Canonicalize()
	return s
}

func (s *StateSet) Add(id StateID) {
	s.ids = append(s.ids, id)
}

func (s *StateSet) Canonicalize() {
	slices.Sort(s.ids)
	s.ids = slices.Compact(s.ids)
}

func (s *StateSet) Clear() {
	s.ids = s.ids[:0]
}

func (s *StateSet) IsEmpty() bool {
	return len(s.ids) == 0
}

func (s *StateSet) Len() int {
	return len(s.ids)
}

// Min returns the smallest id, the representative of a partition.
func (s *StateSet) Min() StateID {
	invariant(len(s.ids) > 0, "min of an empty state set")
	return s.ids[0]
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id StateID) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Equal reports whether both sets hold the same ids.
func (s *StateSet) Equal(other *StateSet) bool {
	return slices.Equal(s.ids, other.ids)
}

// IDs returns the ids in order. The slice is owned by the set.
func (s *StateSet) IDs() []StateID {
	return s.ids
}

// Intersection writes s ∩ other into dest. dest must not be s or other.
func (s *StateSet) Intersection(other *StateSet, dest *StateSet) {
	dest.Clear()
	a, b := s.ids, other.ids
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			dest.ids = append(dest.ids, a[i])
			i++
			j++
		}
	}
}

// Subtract writes s − other into dest. dest must not be s or other.
func (s *StateSet) Subtract(other *StateSet, dest *StateSet) {
	dest.Clear()
	a, b := s.ids, other.ids
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dest.ids = append(dest.ids, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	dest.ids = append(dest.ids, a[i:]...)
}

// DeepClone returns a copy that shares no storage with s.
func (s *StateSet) DeepClone() *StateSet {
	return &StateSet{ids: slices.Clone(s.ids)}
}

// Iter calls f for every id in order.
func (s *StateSet) Iter(f func(StateID)) {
	for _, id := range s.ids {
		f(id)
	}
}

// setHandle names a set stored in a setArena.
type setHandle int

// setArena owns the partitions of one minimization. A partition is referred
// to by handle from both the partition list and the waiting list; a stored
// set is never modified, a split stores two new sets instead.
type setArena struct {
	sets []*StateSet
}

func (a *setArena) add(s *StateSet) setHandle {
	a.sets = append(a.sets, s)
	return setHandle(len(a.sets) - 1)
}

func (a *setArena) get(h setHandle) *StateSet {
	return a.sets[h]
}
