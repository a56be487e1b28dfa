// Package main provides the entry point for RV32Sim.
// RV32Sim is an assembler and sequential simulator for a reduced RV32
// instruction set.
//
// For the tools, use: go run ./cmd/rvasm or go run ./cmd/rvsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("RV32Sim - RV32 assembler and simulator")
	fmt.Println("")
	fmt.Println("Tools:")
	fmt.Println("  rvasm <input.s> <output.bin>   assemble a program")
	fmt.Println("  rvsim                          simulate an assembled program")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvasm' or 'go run ./cmd/rvsim'.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use the cmd/ tools instead.")
	}
}
