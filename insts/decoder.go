package insts

// Decoder decodes RV32 machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new RV32 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies a 32-bit word by its low 7 opcode bits and extracts the
// fields of the matching format. Words whose opcode or funct combination is
// not in the instruction table come back with Op set to OpUnknown; for a
// recognized branch opcode the Format is still FormatB so the executor can
// distinguish an unknown branch from an unknown instruction.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{Op: OpUnknown, Format: FormatUnknown}

	switch word & opcodeMask {
	case OpcodeRType:
		d.decodeR(word, inst)
	case OpcodeIArith, OpcodeLoad, OpcodeJALR:
		d.decodeI(word, inst)
	case OpcodeStore:
		d.decodeS(word, inst)
	case OpcodeBranch:
		d.decodeB(word, inst)
	case OpcodeJAL:
		d.decodeJ(word, inst)
	case OpcodeSystem:
		inst.Op = OpECALL
		inst.Format = FormatSystem
	}

	return inst
}

// match scans the shared table for the entry selected by the decoded
// opcode/funct fields. Funct7 participates only for R-type entries.
func (d *Decoder) match(opcode, funct3, funct7 uint32) (InstrDesc, bool) {
	for _, desc := range descTable {
		if desc.Opcode != opcode || desc.Funct3 != funct3 {
			continue
		}
		if desc.Format == FormatR && desc.Funct7 != funct7 {
			continue
		}
		return desc, true
	}
	return InstrDesc{}, false
}

// decodeR decodes register-register arithmetic instructions.
// Layout: funct7 | rs2 | rs1 | funct3 | rd | opcode
func (d *Decoder) decodeR(word uint32, inst *Instruction) {
	inst.Format = FormatR
	inst.Rd = uint8((word >> rdShift) & regMask)
	inst.Rs1 = uint8((word >> rs1Shift) & regMask)
	inst.Rs2 = uint8((word >> rs2Shift) & regMask)

	funct3 := (word >> funct3Shift) & funct3Mask
	funct7 := (word >> funct7Shift) & funct7Mask
	if desc, ok := d.match(OpcodeRType, funct3, funct7); ok {
		inst.Op = desc.Op
	}
}

// decodeI decodes ADDI, LW, and JALR.
// Layout: imm[11:0] | rs1 | funct3 | rd | opcode
func (d *Decoder) decodeI(word uint32, inst *Instruction) {
	inst.Format = FormatI
	inst.Rd = uint8((word >> rdShift) & regMask)
	inst.Rs1 = uint8((word >> rs1Shift) & regMask)
	inst.Imm = DecodeSigned(word>>rs2Shift, ImmWidthI)

	funct3 := (word >> funct3Shift) & funct3Mask
	if desc, ok := d.match(word&opcodeMask, funct3, 0); ok {
		inst.Op = desc.Op
	}
}

// decodeS decodes SW.
// Layout: imm[11:5] | rs2 | rs1 | funct3 | imm[4:0] | opcode
func (d *Decoder) decodeS(word uint32, inst *Instruction) {
	inst.Format = FormatS
	inst.Rs1 = uint8((word >> rs1Shift) & regMask)
	inst.Rs2 = uint8((word >> rs2Shift) & regMask)

	hi := (word >> funct7Shift) & 0x7F
	lo := (word >> rdShift) & 0x1F
	inst.Imm = DecodeSigned(hi<<5|lo, ImmWidthS)

	funct3 := (word >> funct3Shift) & funct3Mask
	if desc, ok := d.match(OpcodeStore, funct3, 0); ok {
		inst.Op = desc.Op
	}
}

// decodeB decodes BEQ, BNE, and BLT. The displacement's bit 0 is implicit.
// Layout: imm[12] | imm[10:5] | rs2 | rs1 | funct3 | imm[4:1] | imm[11] | opcode
func (d *Decoder) decodeB(word uint32, inst *Instruction) {
	inst.Format = FormatB
	inst.Rs1 = uint8((word >> rs1Shift) & regMask)
	inst.Rs2 = uint8((word >> rs2Shift) & regMask)
	inst.Imm = unpackBImm(word)

	funct3 := (word >> funct3Shift) & funct3Mask
	if desc, ok := d.match(OpcodeBranch, funct3, 0); ok {
		inst.Op = desc.Op
	}
}

// decodeJ decodes JAL. The displacement's bit 0 is implicit.
// Layout: imm[20] | imm[10:1] | imm[11] | imm[19:12] | rd | opcode
func (d *Decoder) decodeJ(word uint32, inst *Instruction) {
	inst.Format = FormatJ
	inst.Op = OpJAL
	inst.Rd = uint8((word >> rdShift) & regMask)
	inst.Imm = unpackJImm(word)
}
