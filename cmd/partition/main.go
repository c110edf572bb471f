// Command partition is the external collaborator spec.md carves out of
// scope for the core engine: it owns argument parsing, JSON decode/encode,
// and reporting fatal input errors on stderr. It has no algorithmic logic
// of its own - everything below delegates straight to the partition
// package's Method dispatcher.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/partition"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "partition:", err)
		os.Exit(1)
	}
}

// run implements the CLI surface: one positional n, one subcommand naming
// a Method, stdin a JSON array of integers, stdout a JSON array of arrays.
func run(args []string, stdin *os.File, stdout *os.File) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: partition <n> {kk|ckk|snp|rnp|gcc|brute}")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid n %q: %w", args[0], err)
	}

	method, err := partition.ParseMethod(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[1])
	}

	var elements []partition.Element
	if err := json.NewDecoder(stdin).Decode(&elements); err != nil {
		return fmt.Errorf("couldn't parse input: %w", err)
	}

	result, err := partition.Partition(method, elements, n)
	if err != nil {
		return err
	}

	out := make([][]partition.Element, len(result))
	for i, s := range result {
		out[i] = s.ToSlice(elements)
	}

	if err := json.NewEncoder(stdout).Encode(out); err != nil {
		return fmt.Errorf("couldn't encode output: %w", err)
	}
	return nil
}
