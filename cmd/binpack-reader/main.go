// Command binpack-reader walks a directory for binpack corpus files and
// reports how many samples each one holds, the CLI surface described in
// spec.md §6 ("a reader utility that walks a directory for files ending
// .binpack or .no-db.binpack, opens each, iterates all samples, prints
// counts"). Grounded directly on original_source/binpack/examples/binpack_reader.rs.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvidlabs/binpack/binpack"
)

func newRootCmd() *cobra.Command {
	dataDir := "./data"
	cmd := &cobra.Command{
		Use:   "binpack-reader [data-dir]",
		Short: "Count samples in every .binpack file under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				dataDir = args[0]
			}
			return run(dataDir)
		},
	}
	return cmd
}

func run(root string) error {
	files, err := collectBinpackFiles(root)
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}
	fmt.Printf("Found %d binpack files under %s\n", len(files), root)

	var total uint64
	for _, path := range files {
		fmt.Printf("Processing %s\n", path)
		count, err := countSamples(path)
		if err != nil {
			fmt.Printf("Could not read %s: %v\n", path, err)
			continue
		}
		if count == 0 {
			fmt.Printf("No chunks in file %s (Empty)\n", path)
			continue
		}
		fmt.Printf("%d entries in %s\n", count, path)
		total += count
	}
	fmt.Printf("Total entries across all files: %d\n", total)
	return nil
}

// collectBinpackFiles walks root for files ending .binpack or
// .no-db.binpack (spec.md §6), matching the original reader's
// collect_binpack_files.
func collectBinpackFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if isBinpackName(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isBinpackName(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func isBinpackName(path string) bool {
	return strings.HasSuffix(path, ".binpack") || strings.HasSuffix(path, ".no-db.binpack")
}

func countSamples(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := binpack.NewReader(f)
	var count uint64
	for r.HasNext() {
		if _, err := r.Next(); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func main() {
	log.SetFlags(log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
