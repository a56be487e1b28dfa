package insts

import "fmt"

// Encoder packs Instruction values into 32-bit machine words.
type Encoder struct{}

// NewEncoder creates a new RV32 instruction encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode packs an instruction into its 32-bit word. The instruction's
// immediate must already be range-checked for its format; Encode only
// performs the bit placement.
func (e *Encoder) Encode(inst *Instruction, desc InstrDesc) (uint32, error) {
	word := desc.Opcode

	switch desc.Format {
	case FormatR:
		// funct7 | rs2 | rs1 | funct3 | rd | opcode
		word |= desc.Funct7 << funct7Shift
		word |= uint32(inst.Rs2) << rs2Shift
		word |= uint32(inst.Rs1) << rs1Shift
		word |= desc.Funct3 << funct3Shift
		word |= uint32(inst.Rd) << rdShift
	case FormatI:
		// imm[11:0] | rs1 | funct3 | rd | opcode
		word |= EncodeSigned(inst.Imm, ImmWidthI) << rs2Shift
		word |= uint32(inst.Rs1) << rs1Shift
		word |= desc.Funct3 << funct3Shift
		word |= uint32(inst.Rd) << rdShift
	case FormatS:
		// imm[11:5] | rs2 | rs1 | funct3 | imm[4:0] | opcode
		v := EncodeSigned(inst.Imm, ImmWidthS)
		word |= ((v >> 5) & 0x7F) << funct7Shift
		word |= uint32(inst.Rs2) << rs2Shift
		word |= uint32(inst.Rs1) << rs1Shift
		word |= desc.Funct3 << funct3Shift
		word |= (v & 0x1F) << rdShift
	case FormatB:
		// imm[12] | imm[10:5] | rs2 | rs1 | funct3 | imm[4:1] | imm[11] | opcode
		word |= packBImm(inst.Imm)
		word |= uint32(inst.Rs2) << rs2Shift
		word |= uint32(inst.Rs1) << rs1Shift
		word |= desc.Funct3 << funct3Shift
	case FormatJ:
		// imm[20] | imm[10:1] | imm[11] | imm[19:12] | rd | opcode
		word |= packJImm(inst.Imm)
		word |= uint32(inst.Rd) << rdShift
	default:
		return 0, fmt.Errorf("unencodable format %d", desc.Format)
	}

	return word, nil
}
