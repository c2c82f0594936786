package listdb

import (
	"github.com/google/uuid"

	"github.com/sparseset/imh/rng"
)

// GenerateRandom builds a synthetic DB of count lists, each containing
// avgLen item ids drawn uniformly from [0, dim), for benchmarking and
// integration tests that need a database without a fixture file on disk.
// It returns a batch id (a fresh uuid) alongside the DB so benchmark
// output and logs can tag which generated batch a run used, the same role
// uuid.New plays for request/run correlation in cmd/imhcmd.
func GenerateRandom(src *rng.Source, count int, dim uint64, avgLen int) (DB, string) {
	db := Create(count, dim)
	for i := range db.Lists {
		l := NewList(avgLen)
		seen := make(map[uint64]bool, avgLen)
		for l.Len() < avgLen {
			id := src.Uint64() % dim
			if seen[id] {
				continue
			}
			seen[id] = true
			l.Push(Item{ID: id, Freq: 1})
		}
		l.SortByItem()
		db.Lists[i] = l
	}
	return db, uuid.NewString()
}
