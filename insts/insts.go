// Package insts provides RV32 instruction definitions, encoding, and decoding.
//
// This package implements the shared instruction table consumed by both the
// assembler (encoding direction) and the simulator (decoding direction). It
// supports:
//   - R-type: ADD, SUB, SLT, SRL, OR, AND
//   - I-type: ADDI, LW, JALR
//   - S-type: SW
//   - B-type: BEQ, BNE, BLT
//   - J-type: JAL
//   - System: ECALL/EBREAK (treated as a halt request)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00500513) // addi a0, zero, 5
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
package insts

import "fmt"

// Op represents an RV32 opcode.
type Op uint16

// RV32 opcodes.
const (
	OpUnknown Op = iota
	OpADD
	OpSUB
	OpSLT
	OpSRL
	OpOR
	OpAND
	OpADDI
	OpLW
	OpJALR
	OpSW
	OpBEQ
	OpBNE
	OpBLT
	OpJAL
	OpECALL
)

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR      // register-register arithmetic
	FormatI      // immediate arithmetic, loads, JALR
	FormatS      // stores
	FormatB      // conditional branches
	FormatJ      // unconditional jumps
	FormatSystem // ECALL/EBREAK
)

// Major opcode values occupying the low 7 bits of every instruction word.
const (
	OpcodeRType  uint32 = 0b0110011
	OpcodeIArith uint32 = 0b0010011
	OpcodeLoad   uint32 = 0b0000011
	OpcodeJALR   uint32 = 0b1100111
	OpcodeStore  uint32 = 0b0100011
	OpcodeBranch uint32 = 0b1100011
	OpcodeJAL    uint32 = 0b1101111
	OpcodeSystem uint32 = 0b1110011
)

// Immediate field widths in bits, per format.
const (
	ImmWidthI = 12
	ImmWidthS = 12
	ImmWidthB = 13
	ImmWidthJ = 21
)

// InstrDesc describes one mnemonic: its format and the bit fields that
// select it. This table is the single source of truth for both the
// encoder and the decoder.
type InstrDesc struct {
	Op     Op
	Format Format
	Opcode uint32
	Funct3 uint32
	Funct7 uint32
}

var descTable = map[string]InstrDesc{
	"add":  {OpADD, FormatR, OpcodeRType, 0b000, 0b0000000},
	"sub":  {OpSUB, FormatR, OpcodeRType, 0b000, 0b0100000},
	"slt":  {OpSLT, FormatR, OpcodeRType, 0b010, 0b0000000},
	"srl":  {OpSRL, FormatR, OpcodeRType, 0b101, 0b0000000},
	"or":   {OpOR, FormatR, OpcodeRType, 0b110, 0b0000000},
	"and":  {OpAND, FormatR, OpcodeRType, 0b111, 0b0000000},
	"addi": {OpADDI, FormatI, OpcodeIArith, 0b000, 0},
	"lw":   {OpLW, FormatI, OpcodeLoad, 0b010, 0},
	"jalr": {OpJALR, FormatI, OpcodeJALR, 0b000, 0},
	"sw":   {OpSW, FormatS, OpcodeStore, 0b010, 0},
	"beq":  {OpBEQ, FormatB, OpcodeBranch, 0b000, 0},
	"bne":  {OpBNE, FormatB, OpcodeBranch, 0b001, 0},
	"blt":  {OpBLT, FormatB, OpcodeBranch, 0b100, 0},
	"jal":  {OpJAL, FormatJ, OpcodeJAL, 0, 0},
}

// Lookup returns the descriptor for a mnemonic.
func Lookup(mnemonic string) (InstrDesc, bool) {
	desc, ok := descTable[mnemonic]
	return desc, ok
}

// ImmWidth returns the declared bit width of the immediate field for a
// format, or 0 if the format carries no immediate.
func (d InstrDesc) ImmWidth() uint {
	switch d.Format {
	case FormatI:
		return ImmWidthI
	case FormatS:
		return ImmWidthS
	case FormatB:
		return ImmWidthB
	case FormatJ:
		return ImmWidthJ
	default:
		return 0
	}
}

// PCRelative reports whether label operands of this instruction resolve to
// a displacement from the current PC rather than an absolute address.
func (d InstrDesc) PCRelative() bool {
	return d.Format == FormatB || d.Format == FormatJ
}

// regNames lists the ABI register names in index order.
var regNames = []string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

var regIndex = map[string]uint8{}

func init() {
	for i, name := range regNames {
		regIndex[name] = uint8(i)
		regIndex[fmt.Sprintf("x%d", i)] = uint8(i)
	}
}

// RegisterIndex resolves a register name (ABI name or xN form) to its
// 5-bit index.
func RegisterIndex(name string) (uint8, bool) {
	idx, ok := regIndex[name]
	return idx, ok
}

// RegisterName returns the ABI name for a register index.
func RegisterName(idx uint8) string {
	if int(idx) < len(regNames) {
		return regNames[idx]
	}
	return fmt.Sprintf("x%d", idx)
}

// Instruction represents a decoded (or to-be-encoded) RV32 instruction.
type Instruction struct {
	Op     Op     // Operation code
	Format Format // Encoding format

	Rd  uint8 // Destination register
	Rs1 uint8 // First source register
	Rs2 uint8 // Second source register

	// Imm is the signed immediate. For B and J formats it is the byte
	// displacement from the instruction's PC, always even (bit 0 is not
	// stored in the word). For loads, stores, and ADDI/JALR it is the
	// raw 12-bit signed value.
	Imm int32
}
