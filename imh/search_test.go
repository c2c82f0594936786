package imh

import (
	"testing"

	"github.com/sparseset/imh/listdb"
	"github.com/stretchr/testify/assert"
)

func TestSortCustomOrdersByDescendingScore(t *testing.T) {
	db := listdb.DB{Lists: []listdb.List{
		listOf(1, 2, 3),
		listOf(1, 2),
		listOf(1),
	}}
	query := listOf(1, 2, 3, 4)
	neighbors := listOf(0, 1, 2)

	ranked := SortCustom(query, neighbors, db, listdb.Overlap)
	assert.Equal(t, []uint64{0, 1, 2}, ranked.Ids())
}

// Ties must preserve input order (sort.SliceStable), not an arbitrary one.
func TestSortCustomStableOnTies(t *testing.T) {
	db := listdb.DB{Lists: []listdb.List{
		listOf(1),
		listOf(1),
		listOf(1),
	}}
	query := listOf(1)
	neighbors := listOf(2, 0, 1)

	constant := func(a, b listdb.List) float64 { return 1 }
	ranked := SortCustom(query, neighbors, db, constant)
	assert.Equal(t, []uint64{2, 0, 1}, ranked.Ids())
}

func TestSortCustomEmptyNeighbors(t *testing.T) {
	db := listdb.DB{Lists: []listdb.List{listOf(1)}}
	ranked := SortCustom(listOf(1), listdb.List{}, db, listdb.Overlap)
	assert.Equal(t, 0, ranked.Len())
}
