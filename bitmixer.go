package dfa

// MurmurHash3 32-bit finalizer.
func mix32(v uint32) uint32 {
	k := v
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// mix64 is the 64-bit MurmurHash3 finalizer.
func mix64(v uint64) uint64 {
	k := v
	k = (k ^ (k >> 33)) * 0xff51afd7ed558ccd
	k = (k ^ (k >> 33)) * 0xc4ceb93e5a0b8d5b
	return k ^ (k >> 33)
}
