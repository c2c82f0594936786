package imh

import "errors"

// Configuration errors abort Build outright.
var (
	ErrTableSizeNotPowerOfTwo = errors.New("imh: table_size must be a power of two")
	ErrZeroTupleSize          = errors.New("imh: tuple_size must be greater than zero")
	ErrZeroSublistSize        = errors.New("imh: sublist_size must be greater than zero")
	ErrZeroDim                = errors.New("imh: dim must be greater than zero")
)

// ErrTableFull is a capacity-exhaustion error: every slot in a table was
// probed during insertion without finding a free or matching bucket. It
// is fatal for the table being built; the caller must retry with a
// larger table_size.
var ErrTableFull = errors.New("imh: hash table is full")
