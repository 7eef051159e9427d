package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// ByteClasses maps each byte value to its alphabet unit.
//
// Two bytes share a unit when no state of the DFA can tell them apart, so a
// state only needs one transition per unit instead of one per byte. Which
// bytes share a unit is decided by whoever builds the DFA; minimization only
// iterates over the units.
type ByteClasses struct {
	classes [256]byte
}

// NewByteClasses returns ByteClasses with every byte in unit 0.
func NewByteClasses() ByteClasses {
	return ByteClasses{}
}

// SingletonByteClasses returns ByteClasses where each byte is its own unit.
func SingletonByteClasses() ByteClasses {
	var bc ByteClasses
	for i := 0; i < 256; i++ {
		bc.classes[i] = byte(i)
	}
	return bc
}

// Get returns the alphabet unit of b.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the number of alphabet units.
func (bc *ByteClasses) AlphabetLen() int {
	maxClass := byte(0)
	for _, c := range bc.classes {
		if c > maxClass {
			maxClass = c
		}
	}
	return int(maxClass) + 1
}

// IsSingleton reports whether each byte is its own unit.
func (bc *ByteClasses) IsSingleton() bool {
	return bc.AlphabetLen() == 256
}

// Representatives returns the smallest byte of every unit, in unit order.
func (bc *ByteClasses) Representatives() []byte {
	seen := bitset.New(256)
	reps := make([]byte, 0, bc.AlphabetLen())
	for b := 0; b < 256; b++ {
		class := uint(bc.classes[b])
		if !seen.Test(class) {
			seen.Set(class)
			reps = append(reps, byte(b))
		}
	}
	return reps
}

// Elements returns all bytes that belong to the given unit.
func (bc *ByteClasses) Elements(class byte) []byte {
	var elems []byte
	for b := 0; b < 256; b++ {
		if bc.classes[b] == class {
			elems = append(elems, byte(b))
		}
	}
	return elems
}

// ByteClassSet collects unit boundaries. Bit i is set when byte i and byte
// i+1 must land in different units.
type ByteClassSet struct {
	bits *bitset.BitSet
}

func NewByteClassSet() *ByteClassSet {
	return &ByteClassSet{bits: bitset.New(256)}
}

// SetRange marks [start, end] as a range whose bytes must be distinguishable
// from the bytes around it.
func (bcs *ByteClassSet) SetRange(start, end byte) {
	if start > 0 {
		bcs.bits.Set(uint(start - 1))
	}
	bcs.bits.Set(uint(end))
}

// SetByte is SetRange(b, b).
func (bcs *ByteClassSet) SetByte(b byte) {
	bcs.SetRange(b, b)
}

// Merge adds the boundaries of other to bcs.
func (bcs *ByteClassSet) Merge(other *ByteClassSet) {
	bcs.bits.InPlaceUnion(other.bits)
}

// ByteClasses turns the boundaries into a lookup table.
func (bcs *ByteClassSet) ByteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)
	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		// a boundary at 255 has nothing after it
		if b < 255 && bcs.bits.Test(uint(b)) {
			class++
		}
	}
	return bc
}
