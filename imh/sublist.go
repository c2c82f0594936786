package imh

import (
	"sort"

	"github.com/sparseset/imh/listdb"
	"github.com/sparseset/imh/rng"
)

// PartitionIntoSublists splits each stored set into random fixed-size
// sublists, the amplification step that makes Intersection Min-Hashing
// work: two sets sharing even a modest number of items become likely to
// share at least one sublist.
//
// A list contributing fewer than sublistSize items yields no sublists
// and is silently absent from the resulting database. ownerIDs[s]
// records the index into db.Lists that sublist s was derived from.
func PartitionIntoSublists(src *rng.Source, db listdb.DB, sublistSize uint64) (listdb.DB, []uint64, error) {
	if sublistSize == 0 {
		return listdb.DB{}, nil, ErrZeroSublistSize
	}

	counts := make([]int, len(db.Lists))
	total := 0
	for i, list := range db.Lists {
		counts[i] = list.Len() / int(sublistSize)
		total += counts[i]
	}

	sublistDB := listdb.Create(total, db.Dim)
	ownerIDs := make([]uint64, total)
	cursor := 0

	for i, list := range db.Lists {
		n := counts[i]
		if n == 0 {
			continue
		}

		order := shuffledOrder(src, list.Len())
		size := int(sublistSize)

		for j := 0; j < n; j++ {
			sub := listdb.NewList(size)
			for _, pos := range order[size*j : size*(j+1)] {
				sub.Push(list.Items[pos])
			}
			sub.SortByItem()
			sublistDB.Lists[cursor] = sub
			ownerIDs[cursor] = uint64(i)
			cursor++
		}

		// Leftover elements (|L_i| not a multiple of sublistSize) join
		// the last sublist produced for this list, which may then
		// exceed sublistSize.
		last := &sublistDB.Lists[cursor-1]
		for _, pos := range order[size*n:] {
			last.Push(list.Items[pos])
		}
		last.SortByItem()
	}

	return sublistDB, ownerIDs, nil
}

// shuffledOrder returns a permutation of [0, n) equivalent to drawing a
// uniform double per position and sorting indices descending by that
// key -- a Fisher-Yates-equivalent shuffle via sort-on-random-key.
// Stability doesn't matter: the keys are unique with overwhelming
// probability.
func shuffledOrder(src *rng.Source, n int) []int {
	type keyed struct {
		pos int
		key float64
	}
	keys := make([]keyed, n)
	for i := range keys {
		keys[i] = keyed{pos: i, key: src.Float64()}
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].key > keys[b].key })

	order := make([]int, n)
	for i, k := range keys {
		order[i] = k.pos
	}
	return order
}
