package emu

import "github.com/sarchlab/rv32sim/insts"

// LoadStoreUnit implements the RV32 load and store operations.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// LW performs a word load: rd = mem[rs1 + imm].
// An out-of-bounds address is a fault and leaves rd untouched.
func (lsu *LoadStoreUnit) LW(inst *insts.Instruction) error {
	addr := lsu.regFile.ReadReg(inst.Rs1) + uint32(inst.Imm)
	value, err := lsu.memory.Load(addr)
	if err != nil {
		return err
	}
	lsu.regFile.WriteReg(inst.Rd, value)
	return nil
}

// SW performs a word store: mem[rs1 + imm] = rs2.
// An out-of-bounds address is a fault and leaves memory untouched.
func (lsu *LoadStoreUnit) SW(inst *insts.Instruction) error {
	addr := lsu.regFile.ReadReg(inst.Rs1) + uint32(inst.Imm)
	return lsu.memory.Store(addr, lsu.regFile.ReadReg(inst.Rs2))
}
