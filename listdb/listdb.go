// Package listdb implements the list/set container that the Intersection
// Min-Hashing core is built against: Item/List/DB value types plus the
// push/sort/dedup utilities the imh package's Build/Query operations use.
package listdb

import "sort"

// Item is an (id, frequency) pair. Only the id participates in hashing;
// frequency is preserved through the pipeline for callers that want it
// (e.g. a weighted overlap score).
type Item struct {
	ID   uint64
	Freq uint64
}

// List is an ordered sequence of Items. After canonicalization (SortByItem
// + Unique) its ids are unique and ascending. An empty List is legal.
type List struct {
	Items []Item
}

// NewList returns a List with capacity hint n. For n == 0 it returns the
// zero List, so an empty list read back by LoadFromFile or DecodeBinary
// equals List{}.
func NewList(n int) List {
	if n == 0 {
		return List{}
	}
	return List{Items: make([]Item, 0, n)}
}

// Len is the number of items in the list.
func (l List) Len() int { return len(l.Items) }

// Push appends an Item.
func (l *List) Push(it Item) {
	l.Items = append(l.Items, it)
}

// Append concatenates src onto l.
func (l *List) Append(src List) {
	l.Items = append(l.Items, src.Items...)
}

// SortByItem sorts the list ascending by item id.
func (l *List) SortByItem() {
	sort.Slice(l.Items, func(i, j int) bool { return l.Items[i].ID < l.Items[j].ID })
}

// Unique collapses adjacent equal ids, requiring a prior SortByItem.
// Frequencies of collapsed runs are summed, so calling SortByItem+Unique
// on a concatenation of per-table bucket contents (as imh.Query does)
// yields one entry per distinct id, its Freq equal to the number of
// tables whose bucket contained it.
func (l *List) Unique() {
	if len(l.Items) == 0 {
		return
	}
	out := l.Items[:1]
	for _, it := range l.Items[1:] {
		last := &out[len(out)-1]
		if last.ID == it.ID {
			last.Freq += it.Freq
			continue
		}
		out = append(out, it)
	}
	l.Items = out
}

// Ids returns the item ids in order, discarding frequency.
func (l List) Ids() []uint64 {
	ids := make([]uint64, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}

// DB is an indexed collection of Lists sharing an upper item-id bound Dim.
type DB struct {
	Lists []List
	Dim   uint64
}

// Create returns a DB with size lists (all empty) and dimensionality dim.
func Create(size int, dim uint64) DB {
	return DB{Lists: make([]List, size), Dim: dim}
}

// ApplyToAll runs fn over every list in the database, in place.
func (db *DB) ApplyToAll(fn func(*List)) {
	for i := range db.Lists {
		fn(&db.Lists[i])
	}
}
