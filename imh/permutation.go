package imh

import "github.com/sparseset/imh/rng"

// GeneratePermutations fills a tupleSize x dim row-major matrix of
// RandomValue: out[k*dim+j] is the rank assigned to item j under MinHash
// function k. Draws happen in (k outer, j inner) order so the stream is
// reproducible for a given src.
func GeneratePermutations(src *rng.Source, dim, tupleSize uint64) []RandomValue {
	out := make([]RandomValue, tupleSize*dim)
	for k := uint64(0); k < tupleSize; k++ {
		base := k * dim
		for j := uint64(0); j < dim; j++ {
			word := src.Uint64()
			out[base+j] = RandomValue{RandomInt: word, RandomDouble: rng.ToFloat64(word)}
		}
	}
	return out
}
