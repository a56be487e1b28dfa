package emu

import (
	"fmt"

	"github.com/sarchlab/rv32sim/insts"
)

// BranchUnit implements the RV32 branch and jump operations.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// Branch executes a B-type instruction and returns the next PC.
//
// The canonical halt form, BEQ comparing x0 against x0 with a zero
// displacement, requests a halt before the branch condition is evaluated.
func (b *BranchUnit) Branch(inst *insts.Instruction, pc uint32) (uint32, bool, error) {
	if inst.Op == insts.OpBEQ && inst.Rs1 == 0 && inst.Rs2 == 0 && inst.Imm == 0 {
		return pc, true, nil
	}

	op1 := b.regFile.ReadReg(inst.Rs1)
	op2 := b.regFile.ReadReg(inst.Rs2)

	var taken bool
	switch inst.Op {
	case insts.OpBEQ:
		taken = op1 == op2
	case insts.OpBNE:
		taken = op1 != op2
	case insts.OpBLT:
		taken = int32(op1) < int32(op2)
	default:
		return pc, false, fmt.Errorf("%w at PC=0x%08x", ErrUnknownBranch, pc)
	}

	if taken {
		return pc + uint32(inst.Imm), false, nil
	}
	return pc + 4, false, nil
}

// JAL links PC+4 into rd and returns PC plus the displacement.
func (b *BranchUnit) JAL(inst *insts.Instruction, pc uint32) uint32 {
	b.regFile.WriteReg(inst.Rd, pc+4)
	return pc + uint32(inst.Imm)
}

// JALR links PC+4 into rd and returns rs1+imm as the next PC outright.
// The target is read before the link is written so rd may equal rs1.
func (b *BranchUnit) JALR(inst *insts.Instruction, pc uint32) uint32 {
	target := b.regFile.ReadReg(inst.Rs1) + uint32(inst.Imm)
	b.regFile.WriteReg(inst.Rd, pc+4)
	return target
}
