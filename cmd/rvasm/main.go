// Package main provides the rvasm assembler CLI.
//
// Usage: rvasm <input.s> <output.bin>
//
// The whole program is assembled in memory before the output file is
// created, so a failed run never leaves a partial binary behind.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/rv32sim/asm"
)

func main() {
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: rvasm <input_file> <output_file>\n")
		os.Exit(1)
	}

	inPath := flag.Arg(0)
	outPath := flag.Arg(1)

	input, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: input file '%s' not found\n", inPath)
		os.Exit(1)
	}
	defer func() { _ = input.Close() }()

	assembler := asm.NewAssembler()
	prog, err := assembler.Assemble(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error at %v\n", err)
		os.Exit(1)
	}

	for _, warning := range prog.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	output, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write to output file '%s'\n", outPath)
		os.Exit(1)
	}
	defer func() { _ = output.Close() }()

	if _, err := prog.WriteTo(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write to output file '%s'\n", outPath)
		os.Exit(1)
	}

	fmt.Printf("Successfully assembled %s to %s\n", inPath, outPath)
}
