// Package main provides the rvsim simulator CLI.
//
// The simulator asks for its file paths interactively and reports the
// outcome textually. The trace file receives one line per executed cycle
// and the final memory dump on every exit path.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/rv32sim/emu"
	"github.com/sarchlab/rv32sim/loader"
)

func main() {
	stdin := bufio.NewReader(os.Stdin)

	inPath := prompt(stdin, "Enter the input file path: ")
	outPath := prompt(stdin, "Enter the output file path: ")

	if runSimulation(inPath, outPath) {
		fmt.Println("Simulation completed successfully")
	} else {
		fmt.Println("Simulation has issues")
	}
}

func prompt(r *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

// runSimulation loads the program, runs it to completion or to a guard,
// and reports true only for a clean halt.
func runSimulation(inPath, outPath string) bool {
	words, err := loader.Load(inPath)
	if err != nil {
		fmt.Printf("Error loading program: %v\n", err)
		return false
	}

	trace, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("Error: failed to write to output file '%s'\n", outPath)
		return false
	}
	defer func() { _ = trace.Close() }()

	emulator := emu.NewEmulator(emu.WithTrace(trace))
	if err := emulator.LoadProgram(words); err != nil {
		fmt.Printf("Error loading program: %v\n", err)
		return false
	}

	result := emulator.Run()
	switch result.Reason {
	case emu.StopHalt:
		return true
	case emu.StopSelfLoop:
		fmt.Printf("Warning: infinite loop detected at PC %08x\n", emulator.RegFile().PC)
	case emu.StopStepLimit:
		fmt.Printf("Stopped after %d steps (possible infinite loop)\n", result.Steps)
	default:
		if result.Err != nil {
			fmt.Printf("Error at PC %08x: %v\n", emulator.RegFile().PC, result.Err)
		}
	}
	return false
}
