package listdb

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// sliceReader decodes typed vectors from an in-memory byte slice without
// copying the backing array, the same scheme Jille-uint64mph's CHD table
// uses to support mmap-backed deserialization (slicereader_safe.go). Here
// it backs DecodeBinary, the compact alternative to the text format in
// io.go, for callers that want to keep a prebuilt list database resident
// as a single byte blob (e.g. embedded fixtures, mmap'd snapshots).
type sliceReader struct {
	b   []byte
	pos int
}

func (r *sliceReader) read(n int) ([]byte, error) {
	if r.pos+n > len(r.b) {
		return nil, io.ErrUnexpectedEOF
	}
	start := r.pos
	r.pos += n
	return r.b[start:r.pos], nil
}

func (r *sliceReader) readUint32() (uint32, error) {
	buf, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (r *sliceReader) readUint64() (uint64, error) {
	buf, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// EncodeBinary writes db in a compact little-endian binary form:
// size(u32) dim(u64) { itemCount(u32) { id(u64) freq(u64) }... }...
func EncodeBinary(w io.Writer, db DB) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(db.Lists))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, db.Dim); err != nil {
		return err
	}
	for _, list := range db.Lists {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(list.Items))); err != nil {
			return err
		}
		for _, it := range list.Items {
			if err := binary.Write(w, binary.LittleEndian, it.ID); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, it.Freq); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeBinary parses the form EncodeBinary produces out of an in-memory
// byte slice.
func DecodeBinary(b []byte) (DB, error) {
	r := &sliceReader{b: b}

	size, err := r.readUint32()
	if err != nil {
		return DB{}, fmt.Errorf("listdb: decode size: %w", err)
	}
	dim, err := r.readUint64()
	if err != nil {
		return DB{}, fmt.Errorf("listdb: decode dim: %w", err)
	}

	db := Create(int(size), dim)
	for i := range db.Lists {
		n, err := r.readUint32()
		if err != nil {
			return DB{}, fmt.Errorf("listdb: decode list %d item count: %w", i, err)
		}
		list := NewList(int(n))
		for j := uint32(0); j < n; j++ {
			id, err := r.readUint64()
			if err != nil {
				return DB{}, fmt.Errorf("listdb: decode list %d item %d id: %w", i, j, err)
			}
			freq, err := r.readUint64()
			if err != nil {
				return DB{}, fmt.Errorf("listdb: decode list %d item %d freq: %w", i, j, err)
			}
			list.Push(Item{ID: id, Freq: freq})
		}
		db.Lists[i] = list
	}
	return db, nil
}

// SaveBinaryToFile writes db to path using EncodeBinary.
func SaveBinaryToFile(path string, db DB) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("listdb: create %s: %w", path, err)
	}
	defer f.Close()
	if err := EncodeBinary(f, db); err != nil {
		return fmt.Errorf("listdb: encode %s: %w", path, err)
	}
	return nil
}

// LoadBinaryFromFile reads the whole file into memory and decodes it.
func LoadBinaryFromFile(path string) (DB, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return DB{}, fmt.Errorf("listdb: read %s: %w", path, err)
	}
	return DecodeBinary(b)
}
