// Package imh implements the Intersection Min-Hashing (IMH) index: a
// locality-sensitive hashing scheme over sparse, item-valued sets. Each
// stored set is split into small random sublists, each sublist is hashed
// into several independent tables, and two sets with a large intersection
// collide under at least one table with high probability. Queries return
// the union of bucket co-occupants, optionally re-ranked by a caller's
// similarity function.
//
// This file holds the shared value types the rest of the package is
// built from.
package imh

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("imh")

// RandomValue is a jointly-sampled (random integer, random double) pair:
// the double is derived from the top 53 bits of the integer, scaled by
// 2^-53, so a single draw from the RNG yields both fields.
type RandomValue struct {
	RandomInt    uint64
	RandomDouble float64
}
