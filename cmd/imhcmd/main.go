// Command imhcmd builds an Intersection Min-Hashing index over a database
// of lists and searches it for approximate nearest neighbors of a second
// database of query lists, writing the ranked results to a third file.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/sparseset/imh/imh"
	"github.com/sparseset/imh/listdb"
	"github.com/sparseset/imh/rng"
)

var log = logging.Logger("imhcmd")

// config holds the index-construction parameters: tuple_size,
// number_of_tables, table_size (given as a power-of-two exponent, not
// the raw size), sublist_size, and the RNG seed.
type config struct {
	tupleSize      uint64
	numberOfTables uint64
	tableSizeLog2  uint64
	sublistSize    uint64
	seed           uint64
	binary         bool
}

func main() {
	cfg := &config{}
	root := newRootCmd(cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imhcmd LISTDB_FILE QUERY_FILE OUTPUT_FILE",
		Short: "Nearest neighbor search on lists using Intersection Min-Hashing",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args[0], args[1], args[2])
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Uint64VarP(&cfg.tupleSize, "tuple_size", "r", 3, "number of hash values per tuple")
	flags.Uint64VarP(&cfg.numberOfTables, "number_of_tables", "l", 50, "number of tables in the search index")
	flags.Uint64VarP(&cfg.tableSizeLog2, "table_size", "t", 20, "hash table size, as a power of two (2^n buckets)")
	flags.Uint64VarP(&cfg.sublistSize, "sublist_size", "s", 3, "size of the sublists built from the database of lists")
	flags.Uint64VarP(&cfg.seed, "seed", "e", 123456, "seed for the random number generator")
	flags.BoolVar(&cfg.binary, "binary", false, "read and write list databases in the compact binary format instead of the sparse-vector text format")
	return cmd
}

func loadDB(cfg *config, path string) (listdb.DB, error) {
	if cfg.binary {
		return listdb.LoadBinaryFromFile(path)
	}
	return listdb.LoadFromFile(path)
}

func saveDB(cfg *config, path string, db listdb.DB) error {
	if cfg.binary {
		return listdb.SaveBinaryToFile(path, db)
	}
	return listdb.SaveToFile(path, db)
}

func run(cfg *config, listdbFile, queryFile, outputFile string) error {
	runID := uuid.New().String()
	log.Infow("starting run", "run_id", runID,
		"tuple_size", cfg.tupleSize,
		"number_of_tables", cfg.numberOfTables,
		"table_size", uint64(1)<<cfg.tableSizeLog2,
		"sublist_size", cfg.sublistSize,
		"seed", cfg.seed,
	)

	log.Infow("reading database of lists", "run_id", runID, "path", listdbFile)
	db, err := loadDB(cfg, listdbFile)
	if err != nil {
		return fmt.Errorf("imhcmd: %w", err)
	}
	log.Infow("loaded database", "run_id", runID, "size", len(db.Lists), "dim", db.Dim)

	log.Infow("reading queries", "run_id", runID, "path", queryFile)
	queries, err := loadDB(cfg, queryFile)
	if err != nil {
		return fmt.Errorf("imhcmd: %w", err)
	}

	tableSize := uint64(1) << cfg.tableSizeLog2
	log.Infow("building hash index", "run_id", runID,
		"number_of_tables", cfg.numberOfTables,
		"tuple_size", cfg.tupleSize,
		"table_size", tableSize,
		"sublist_size", cfg.sublistSize,
	)
	src := rng.New(cfg.seed)
	index, err := imh.Build(src, db, cfg.numberOfTables, cfg.tupleSize, tableSize, cfg.sublistSize)
	if err != nil {
		return fmt.Errorf("imhcmd: build index: %w", err)
	}

	log.Infow("searching for neighbors", "run_id", runID)
	neighbors := index.QueryMulti(queries)

	log.Infow("sorting neighbors by overlap", "run_id", runID)
	for i, q := range queries.Lists {
		neighbors.Lists[i] = imh.SortCustom(q, neighbors.Lists[i], db, listdb.Overlap)
	}

	log.Infow("saving neighbors", "run_id", runID, "path", outputFile)
	if err := saveDB(cfg, outputFile, neighbors); err != nil {
		return fmt.Errorf("imhcmd: %w", err)
	}
	return nil
}
