package dfa

// Hashable is a key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// The table doubles once it holds more keys than this fraction of its buckets.
const hashMapMaxLoad = 0.75

// HashMap is a chained hash table keyed by Hashable values. The initial
// partitioner keys it by frozenPatternSet to find the partition of each
// distinct set of pattern ids. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*hashEntry[T]
	size    int
	mask    uint64
}

type hashEntry[T any] struct {
	key   Hashable
	value T
	next  *hashEntry[T]
}

type optionsHashMap struct {
	capacity int
}

// OptionsHashMap configures NewHashMap.
type OptionsHashMap func(*optionsHashMap)

// WithCapacity sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](opts ...OptionsHashMap) *HashMap[T] {
	o := &optionsHashMap{capacity: 1}
	for _, fn := range opts {
		fn(o)
	}
	buckets := 1
	for buckets < o.capacity {
		buckets <<= 1
	}
	return &HashMap[T]{
		buckets: make([]*hashEntry[T], buckets),
		mask:    uint64(buckets - 1),
	}
}

// Set inserts or replaces the value of key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	i := key.Hash() & m.mask
	for e := m.buckets[i]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}
	m.buckets[i] = &hashEntry[T]{key: key, value: value, next: m.buckets[i]}
	m.size++
	if float64(m.size) > hashMapMaxLoad*float64(len(m.buckets)) {
		m.grow()
	}
}

// Get returns the value of key and whether it was present.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// grow doubles the bucket count and relinks every entry.
func (m *HashMap[T]) grow() {
	buckets := make([]*hashEntry[T], 2*len(m.buckets))
	mask := uint64(len(buckets) - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			i := e.key.Hash() & mask
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}
	m.buckets, m.mask = buckets, mask
}
