package emu

import (
	"fmt"

	"github.com/sarchlab/rv32sim/insts"
)

// ALU implements the RV32 register-register and register-immediate
// arithmetic operations.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// Register executes an R-type instruction: rd = rs1 <op> rs2.
// SLT compares the operands as signed values; SRL shifts by rs2 mod 32.
func (a *ALU) Register(inst *insts.Instruction) error {
	op1 := a.regFile.ReadReg(inst.Rs1)
	op2 := a.regFile.ReadReg(inst.Rs2)

	var result uint32
	switch inst.Op {
	case insts.OpADD:
		result = op1 + op2
	case insts.OpSUB:
		result = op1 - op2
	case insts.OpSLT:
		if int32(op1) < int32(op2) {
			result = 1
		}
	case insts.OpSRL:
		result = op1 >> (op2 % 32)
	case insts.OpOR:
		result = op1 | op2
	case insts.OpAND:
		result = op1 & op2
	default:
		return fmt.Errorf("%w: R-type op %d", ErrUnknownInstruction, inst.Op)
	}

	a.regFile.WriteReg(inst.Rd, result)
	return nil
}

// AddImmediate executes ADDI: rd = rs1 + imm.
func (a *ALU) AddImmediate(inst *insts.Instruction) {
	result := a.regFile.ReadReg(inst.Rs1) + uint32(inst.Imm)
	a.regFile.WriteReg(inst.Rd, result)
}
