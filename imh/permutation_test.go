package imh

import (
	"testing"

	"github.com/sparseset/imh/rng"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePermutationsShape(t *testing.T) {
	src := rng.New(1)
	perms := GeneratePermutations(src, 5, 3)
	assert.Len(t, perms, 15)
}

func TestGeneratePermutationsReproducible(t *testing.T) {
	a := GeneratePermutations(rng.New(7), 4, 2)
	b := GeneratePermutations(rng.New(7), 4, 2)
	assert.Equal(t, a, b)
}

func TestGeneratePermutationsDiffersBySeed(t *testing.T) {
	a := GeneratePermutations(rng.New(1), 4, 2)
	b := GeneratePermutations(rng.New(2), 4, 2)
	assert.NotEqual(t, a, b)
}

// Permutations are laid out row-major: tupleSize contiguous dim-sized
// rows, row k (one MinHash function) starting at k*dim, with entries
// drawn in the same order the source would produce on its own.
func TestGeneratePermutationsRowMajorOrder(t *testing.T) {
	const dim, tupleSize = uint64(4), uint64(2)
	perms := GeneratePermutations(rng.New(3), dim, tupleSize)

	fresh := rng.New(3)
	for k := uint64(0); k < tupleSize; k++ {
		for j := uint64(0); j < dim; j++ {
			word := fresh.Uint64()
			entry := perms[k*dim+j]
			assert.Equal(t, word, entry.RandomInt)
			assert.Equal(t, rng.ToFloat64(word), entry.RandomDouble)
		}
	}
}
