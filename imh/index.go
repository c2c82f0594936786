package imh

import (
	"fmt"

	"github.com/sparseset/imh/listdb"
	"github.com/sparseset/imh/rng"
)

// Index is number_of_tables independent hash tables sharing the same
// sublist database, each with its own permutations and universal-hash
// coefficients. It is read-only after Build returns and safe to share
// across query goroutines: no Index method ever mutates a table.
type Index struct {
	tables []*table
}

// Build partitions db into random sublists and constructs an Index of
// numberOfTables tables, each populated with every non-empty sublist. All
// random draws come from src in a single, deterministic order, so (src's
// seed, db, numberOfTables, tupleSize, tableSize, sublistSize) -> Index
// is reproducible.
//
// Build rejects a non-power-of-two tableSize, a zero tupleSize,
// sublistSize, or db.Dim as configuration errors, and returns
// ErrTableFull if a table cannot accommodate its sublists within
// tableSize probes.
func Build(src *rng.Source, db listdb.DB, numberOfTables, tupleSize, tableSize, sublistSize uint64) (*Index, error) {
	if !isPowerOfTwo(tableSize) {
		return nil, ErrTableSizeNotPowerOfTwo
	}
	if tupleSize == 0 {
		return nil, ErrZeroTupleSize
	}
	if sublistSize == 0 {
		return nil, ErrZeroSublistSize
	}
	if db.Dim == 0 {
		return nil, ErrZeroDim
	}

	sublistDB, ownerIDs, err := PartitionIntoSublists(src, db, sublistSize)
	if err != nil {
		return nil, err
	}

	tables := make([]*table, numberOfTables)
	for t := uint64(0); t < numberOfTables; t++ {
		tbl, err := newTable(src, db.Dim, tupleSize, tableSize, sublistSize)
		if err != nil {
			return nil, fmt.Errorf("imh: build table %d: %w", t, err)
		}
		for i, sub := range sublistDB.Lists {
			if sub.Len() == 0 {
				continue
			}
			if err := tbl.storeList(sub, ownerIDs[i]); err != nil {
				return nil, fmt.Errorf("imh: build table %d: %w", t, err)
			}
		}
		tables[t] = tbl
		log.Infow("built table", "table", t, "used_buckets", len(tbl.usedBuckets))
	}

	log.Infow("built index",
		"number_of_tables", numberOfTables,
		"tuple_size", tupleSize,
		"table_size", tableSize,
		"sublist_size", sublistSize,
		"sublists", len(sublistDB.Lists),
	)
	return &Index{tables: tables}, nil
}
