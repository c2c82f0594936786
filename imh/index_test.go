package imh

import (
	"testing"

	"github.com/sparseset/imh/listdb"
	"github.com/sparseset/imh/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsNonPowerOfTwoTableSize(t *testing.T) {
	db := listdb.DB{Dim: 10, Lists: []listdb.List{listOf(1, 2, 3)}}
	_, err := Build(rng.New(1), db, 1, 1, 20, 3)
	assert.ErrorIs(t, err, ErrTableSizeNotPowerOfTwo)
}

func TestBuildRejectsZeroDim(t *testing.T) {
	db := listdb.DB{Dim: 0, Lists: []listdb.List{listOf(1, 2, 3)}}
	_, err := Build(rng.New(1), db, 1, 1, 16, 3)
	assert.ErrorIs(t, err, ErrZeroDim)
}

func TestBuildRejectsZeroTupleSize(t *testing.T) {
	db := listdb.DB{Dim: 10, Lists: []listdb.List{listOf(1, 2, 3)}}
	_, err := Build(rng.New(1), db, 1, 0, 16, 3)
	assert.ErrorIs(t, err, ErrZeroTupleSize)
}

// With tuple_size 1, MinHash of a full list is the RandomInt of whichever
// item has the smallest RandomDouble under the table's single permutation.
// That item belongs to exactly one of the list's sublists (sublists
// partition the list), and that sublist's MinHash must equal the same
// value, since its items are a subset of the full list's. So the query's
// (hashValue, index) pair is bound to be identical to that sublist's,
// making self-retrieval deterministic -- not merely probable -- whenever
// tuple_size is 1 and the list divides evenly into sublists.
func TestBuildQuerySelfRetrieval(t *testing.T) {
	db := listdb.DB{Dim: 20, Lists: []listdb.List{listOf(1, 2, 3, 4, 5, 6)}}
	idx, err := Build(rng.New(42), db, 1, 1, 8, 3)
	require.NoError(t, err)

	result := idx.Query(db.Lists[0])
	assert.Contains(t, result.Ids(), uint64(0))
}

// Two distinct lists with identical contents share the same global-min
// item under any given table's permutation, so by the same argument as
// above, both contribute a sublist with an identical MinHash tuple and
// land in the same bucket: querying either retrieves both owners.
func TestBuildQueryDuplicateListsCollide(t *testing.T) {
	content := listOf(1, 2, 3, 4, 5, 6)
	db := listdb.DB{Dim: 20, Lists: []listdb.List{content, content}}
	idx, err := Build(rng.New(7), db, 1, 1, 8, 3)
	require.NoError(t, err)

	result := idx.Query(db.Lists[0])
	assert.Contains(t, result.Ids(), uint64(0))
	assert.Contains(t, result.Ids(), uint64(1))
}

// Querying with the empty list never touches MinHash and always returns
// an empty result, independent of the index contents.
func TestQueryEmptyListReturnsEmpty(t *testing.T) {
	db := listdb.DB{Dim: 20, Lists: []listdb.List{listOf(1, 2, 3, 4, 5, 6)}}
	idx, err := Build(rng.New(1), db, 2, 2, 16, 3)
	require.NoError(t, err)

	result := idx.Query(listdb.List{})
	assert.Equal(t, 0, result.Len())
}

// Build is a deterministic function of (seed, db, parameters): two
// indices built from freshly-seeded sources with identical seeds must
// answer an identical query identically.
func TestBuildIsReproducible(t *testing.T) {
	db := listdb.DB{Dim: 30, Lists: []listdb.List{
		listOf(1, 2, 3, 4, 5, 6),
		listOf(7, 8, 9, 10, 11, 12),
	}}
	idxA, err := Build(rng.New(99), db, 3, 2, 16, 3)
	require.NoError(t, err)
	idxB, err := Build(rng.New(99), db, 3, 2, 16, 3)
	require.NoError(t, err)

	for _, q := range db.Lists {
		ra := idxA.Query(q)
		rb := idxB.Query(q)
		assert.Equal(t, ra.Ids(), rb.Ids())
	}
}

// Query's result never contains a duplicate id, even when the same owner
// collides in more than one table.
func TestQueryResultHasNoDuplicateIds(t *testing.T) {
	db := listdb.DB{Dim: 20, Lists: []listdb.List{listOf(1, 2, 3, 4, 5, 6)}}
	idx, err := Build(rng.New(3), db, 8, 1, 8, 3)
	require.NoError(t, err)

	result := idx.Query(db.Lists[0])
	seen := map[uint64]bool{}
	for _, id := range result.Ids() {
		assert.False(t, seen[id], "duplicate id %d in query result", id)
		seen[id] = true
	}
}

func TestQueryMultiIsIndependentPerQuery(t *testing.T) {
	db := listdb.DB{Dim: 20, Lists: []listdb.List{
		listOf(1, 2, 3, 4, 5, 6),
		listOf(7, 8, 9, 10, 11, 12),
	}}
	idx, err := Build(rng.New(4), db, 2, 1, 8, 3)
	require.NoError(t, err)

	queries := listdb.DB{Dim: 20, Lists: []listdb.List{db.Lists[0], listdb.List{}}}
	results := idx.QueryMulti(queries)
	require.Equal(t, 2, len(results.Lists))
	assert.Contains(t, results.Lists[0].Ids(), uint64(0))
	assert.Equal(t, 0, results.Lists[1].Len())
}
