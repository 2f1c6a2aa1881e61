// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// tripleKey packs a (var, hi, lo) unique-table lookup key into 12 bytes
// and mixes it with xxhash; any 64-bit mixer with good avalanche would do
// here, xxhash is simply the one the retrieval pack reaches for.
func tripleKey(var_ int32, hi, lo NodeRef) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(var_))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(hi))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(lo))
	return xxhash.Sum64(buf[:])
}

// iteKey packs the three ITE operands (A, B, C) into 12 bytes for the
// computed cache.
func iteKey(a, b, c NodeRef) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(a))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(b))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(c))
	return xxhash.Sum64(buf[:])
}
