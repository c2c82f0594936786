package listdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("listdb")

// LoadFromFile reads a DB from the sparse-list text format:
//
//	<size> <dim>
//	<n> id:freq id:freq ... (one line per list, n items)
func LoadFromFile(path string) (DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return DB{}, fmt.Errorf("listdb: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return DB{}, fmt.Errorf("listdb: %s: missing header line", path)
	}
	size, dim, err := parseHeader(sc.Text())
	if err != nil {
		return DB{}, fmt.Errorf("listdb: %s: %w", path, err)
	}

	db := Create(size, dim)
	for i := 0; i < size; i++ {
		if !sc.Scan() {
			return DB{}, fmt.Errorf("listdb: %s: expected %d lists, found %d", path, size, i)
		}
		list, err := parseListLine(sc.Text())
		if err != nil {
			return DB{}, fmt.Errorf("listdb: %s: list %d: %w", path, i, err)
		}
		db.Lists[i] = list
	}
	if err := sc.Err(); err != nil {
		return DB{}, fmt.Errorf("listdb: %s: %w", path, err)
	}

	log.Infow("loaded list database", "path", path, "size", size, "dim", dim)
	return db, nil
}

func parseHeader(line string) (size int, dim uint64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed header %q", line)
	}
	size64, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed size: %w", err)
	}
	if size64 < 0 {
		return 0, 0, fmt.Errorf("malformed size: %d is negative", size64)
	}
	dim, err = strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed dim: %w", err)
	}
	return int(size64), dim, nil
}

func parseListLine(line string) (List, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return List{}, fmt.Errorf("empty line")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return List{}, fmt.Errorf("malformed item count: %w", err)
	}
	if len(fields)-1 != n {
		return List{}, fmt.Errorf("header says %d items, found %d", n, len(fields)-1)
	}
	list := NewList(n)
	for _, pair := range fields[1:] {
		idStr, freqStr, ok := strings.Cut(pair, ":")
		if !ok {
			return List{}, fmt.Errorf("malformed item %q, want id:freq", pair)
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return List{}, fmt.Errorf("malformed id in %q: %w", pair, err)
		}
		freq, err := strconv.ParseUint(freqStr, 10, 64)
		if err != nil {
			return List{}, fmt.Errorf("malformed freq in %q: %w", pair, err)
		}
		list.Push(Item{ID: id, Freq: freq})
	}
	return list, nil
}

// SaveToFile writes db in the format LoadFromFile reads.
func SaveToFile(path string, db DB) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("listdb: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeTo(w, db); err != nil {
		return fmt.Errorf("listdb: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("listdb: flush %s: %w", path, err)
	}
	log.Infow("saved list database", "path", path, "size", len(db.Lists), "dim", db.Dim)
	return nil
}

func writeTo(w io.Writer, db DB) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", len(db.Lists), db.Dim); err != nil {
		return err
	}
	for _, list := range db.Lists {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", len(list.Items))
		for _, it := range list.Items {
			fmt.Fprintf(&sb, " %d:%d", it.ID, it.Freq)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
