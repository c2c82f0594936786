package imh

import (
	"github.com/sparseset/imh/listdb"
	"github.com/sparseset/imh/rng"
)

// bucket is (hash_value, items): empty iff items has no entries, in which
// case hashValue is undefined until a probe claims it.
type bucket struct {
	hashValue uint64
	items     listdb.List
}

func (b *bucket) occupied() bool { return b.items.Len() != 0 }

// table is one independently-seeded hash table in an Index: a
// power-of-two bucket array with linear probing keyed by the full
// universal-hash value, plus the permutation family and universal-hash
// coefficients used to route a list to a bucket. Fields are unexported: a
// table is only ever reached through the Index that owns it.
type table struct {
	tableSize    uint64
	tupleSize    uint64
	dim          uint64
	sublistSize  uint64
	permutations []RandomValue
	buckets      []bucket
	usedBuckets  []uint64
	a, b         []uint64
}

func isPowerOfTwo(v uint64) bool { return v != 0 && v&(v-1) == 0 }

func newTable(src *rng.Source, dim, tupleSize, tableSize, sublistSize uint64) (*table, error) {
	if !isPowerOfTwo(tableSize) {
		return nil, ErrTableSizeNotPowerOfTwo
	}
	if tupleSize == 0 {
		return nil, ErrZeroTupleSize
	}
	if sublistSize == 0 {
		return nil, ErrZeroSublistSize
	}
	if dim == 0 {
		return nil, ErrZeroDim
	}

	t := &table{
		tableSize:    tableSize,
		tupleSize:    tupleSize,
		dim:          dim,
		sublistSize:  sublistSize,
		permutations: GeneratePermutations(src, dim, tupleSize),
		buckets:      make([]bucket, tableSize),
		a:            make([]uint64, tupleSize),
		b:            make([]uint64, tupleSize),
	}
	// a, b are drawn once here and frozen for the table's lifetime.
	// Coefficients are masked to 32 bits so that a term's product stays
	// within the width accumulateTerm's 128-bit fold is sized for.
	for i := uint64(0); i < tupleSize; i++ {
		t.a[i] = src.Uint64() & 0xFFFFFFFF
		t.b[i] = src.Uint64() & 0xFFFFFFFF
	}
	return t, nil
}

// universalHash computes the tuple's MinHash values and folds them,
// through the table's a/b coefficients, into a (hashValue, index) pair.
func (t *table) universalHash(list listdb.List) (hashValue, index uint64) {
	var idxHi, idxLo, hvHi, hvLo uint64
	for k := uint64(0); k < t.tupleSize; k++ {
		perm := t.permutations[k*t.dim : (k+1)*t.dim]
		m := MinHash(list, perm)
		idxHi, idxLo = accumulateTerm(idxHi, idxLo, t.a[k], m)
		hvHi, hvLo = accumulateTerm(hvHi, hvLo, t.b[k], m)
	}
	hashValue = reduceMod128(hvHi, hvLo)
	index = reduceMod128(idxHi, idxLo) & (t.tableSize - 1)
	return hashValue, index
}

// claimBucket finds or claims the bucket list hashes to, open-addressed
// with linear probing. It mutates the table: the first empty bucket it
// reaches gets its hashValue set to the list's. The bucket counts as
// occupied only once an item is pushed into it (storeList does this
// right after the claim).
func (t *table) claimBucket(list listdb.List) (uint64, error) {
	hashValue, start := t.universalHash(list)
	return t.claimAt(hashValue, start)
}

// claimAt is claimBucket's probing loop, split out from the hash
// computation so it can be exercised directly with chosen (hashValue,
// start) pairs.
func (t *table) claimAt(hashValue, start uint64) (uint64, error) {
	for step := uint64(0); step < t.tableSize; step++ {
		idx := (start + step) & (t.tableSize - 1)
		b := &t.buckets[idx]
		if !b.occupied() {
			b.hashValue = hashValue
			return idx, nil
		}
		if b.hashValue == hashValue {
			return idx, nil
		}
	}
	return 0, ErrTableFull
}

// lookupBucket is claimBucket's read-only counterpart: it never creates a
// bucket, so a miss (an empty slot reached while probing, or table_size
// probes exhausted) just means query contributes nothing from this table.
func (t *table) lookupBucket(list listdb.List) (index uint64, ok bool) {
	hashValue, start := t.universalHash(list)
	return t.lookupAt(hashValue, start)
}

// lookupAt is lookupBucket's probing loop, split out for direct testing.
func (t *table) lookupAt(hashValue, start uint64) (uint64, bool) {
	for step := uint64(0); step < t.tableSize; step++ {
		idx := (start + step) & (t.tableSize - 1)
		b := &t.buckets[idx]
		if !b.occupied() {
			return 0, false
		}
		if b.hashValue == hashValue {
			return idx, true
		}
	}
	return 0, false
}

// storeList claims list's bucket and appends id to its items, recording
// the bucket index in usedBuckets the first time it transitions from
// empty to occupied, so usedBuckets always lists exactly the non-empty
// buckets, each exactly once.
func (t *table) storeList(list listdb.List, id uint64) error {
	idx, err := t.claimBucket(list)
	if err != nil {
		return err
	}
	b := &t.buckets[idx]
	if !b.occupied() {
		t.usedBuckets = append(t.usedBuckets, idx)
	}
	b.items.Push(listdb.Item{ID: id, Freq: 1})
	return nil
}
