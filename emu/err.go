package emu

import (
	"errors"

	"github.com/sarchlab/rv32sim/translate"
)

var f = translate.From

var (
	// ErrProgramTooLarge is returned when a program has more words than
	// the machine's memory can hold.
	ErrProgramTooLarge = errors.New(f("program exceeds memory capacity"))

	// ErrMemoryAccess is returned for a load or store whose byte address
	// falls outside the memory.
	ErrMemoryAccess = errors.New(f("invalid memory address"))

	// ErrUnknownInstruction is returned when a fetched word's opcode or
	// funct combination is not in the instruction table.
	ErrUnknownInstruction = errors.New(f("unknown instruction"))

	// ErrUnknownBranch is returned for a branch-opcode word whose funct3
	// selects no known branch.
	ErrUnknownBranch = errors.New(f("unknown branch"))
)
