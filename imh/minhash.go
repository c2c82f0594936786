package imh

import "github.com/sparseset/imh/listdb"

// MinHash returns the random_int of the item with the smallest
// random_double in list under permutation (a dim-sized row produced by
// GeneratePermutations). It depends only on the set of item ids, not
// their order or frequency.
//
// Calling MinHash with an empty list is not part of any core path (Build
// and Query both guard against it); the behavior here is to read items[0]
// of a zero-length slice, which panics.
func MinHash(list listdb.List, permutation []RandomValue) uint64 {
	items := list.Items
	best := permutation[items[0].ID]
	for _, it := range items[1:] {
		v := permutation[it.ID]
		if v.RandomDouble < best.RandomDouble {
			best = v
		}
	}
	return best.RandomInt
}
