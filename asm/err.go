package asm

import (
	"errors"

	"github.com/sarchlab/rv32sim/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrUnknownMnemonic  = errors.New(f("unknown instruction"))
	ErrOperandCount     = errors.New(f("wrong operand count"))
	ErrInvalidRegister  = errors.New(f("invalid register"))
	ErrDuplicateLabel   = errors.New(f("duplicate label"))
	ErrInvalidImmediate = errors.New(f("invalid immediate or undefined label"))
	ErrImmediateRange   = errors.New(f("immediate out of range"))
)

// ErrSyntax ties an assembly error to the source line it came from.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
