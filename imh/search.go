package imh

import (
	"sort"

	"github.com/sparseset/imh/listdb"
)

// Query returns the union of owner-list ids whose sublists collided with
// q in at least one table, deduplicated by id. Each id's Freq in the
// result is the number of tables that collided with it: listdb.List.Unique
// sums frequencies across the per-table contributions, which are each
// pushed with Freq 1, so the count doubles as a frequency-weighted
// ranking signal without changing what Query returns when a caller
// ignores Freq.
//
// Query never mutates idx: it only calls each table's read-only
// lookupBucket, never claimBucket.
func (idx *Index) Query(q listdb.List) listdb.List {
	if q.Len() == 0 {
		return listdb.List{}
	}

	var neighbors listdb.List
	for _, t := range idx.tables {
		i, ok := t.lookupBucket(q)
		if !ok {
			continue
		}
		neighbors.Append(t.buckets[i].items)
	}
	neighbors.SortByItem()
	neighbors.Unique()
	return neighbors
}

// QueryMulti runs Query independently over every list in queries; there
// is no state shared between queries.
func (idx *Index) QueryMulti(queries listdb.DB) listdb.DB {
	out := listdb.Create(len(queries.Lists), queries.Dim)
	for i, q := range queries.Lists {
		out.Lists[i] = idx.Query(q)
	}
	return out
}

// SortCustom reorders neighbors by descending score(query, db.Lists[id]),
// leaving ties in their input order.
func SortCustom(query listdb.List, neighbors listdb.List, db listdb.DB, score listdb.ScoreFunc) listdb.List {
	type ranked struct {
		item  listdb.Item
		score float64
	}

	scores := make([]ranked, len(neighbors.Items))
	for i, it := range neighbors.Items {
		scores[i] = ranked{item: it, score: score(query, db.Lists[it.ID])}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	out := listdb.NewList(len(scores))
	for _, r := range scores {
		out.Push(r.item)
	}
	return out
}
