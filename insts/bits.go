package insts

// Register field positions shared by every format.
const (
	rdShift  = 7
	rs1Shift = 15
	rs2Shift = 20

	funct3Shift = 12
	funct7Shift = 25

	opcodeMask = 0x7F
	regMask    = 0x1F
	funct3Mask = 0x7
	funct7Mask = 0x7F
)

// mask returns the low-bit mask for a field width.
func mask(width uint) uint32 {
	return (1 << width) - 1
}

// EncodeSigned maps a signed integer to its fixed-width two's-complement
// bit pattern. The caller must have range-checked v with FitsSigned.
func EncodeSigned(v int32, width uint) uint32 {
	return uint32(v) & mask(width)
}

// DecodeSigned interprets a fixed-width bit pattern as a two's-complement
// signed integer. It is the inverse of EncodeSigned for all in-range values.
func DecodeSigned(bits uint32, width uint) int32 {
	bits &= mask(width)
	if bits&(1<<(width-1)) != 0 {
		return int32(bits | ^mask(width))
	}
	return int32(bits)
}

// FitsSigned reports whether v is representable as a signed two's-complement
// value of the given width.
func FitsSigned(v int64, width uint) bool {
	limit := int64(1) << (width - 1)
	return v >= -limit && v <= limit-1
}

// packBImm scatters a 13-bit branch byte displacement into its word
// positions. Bit 0 of the displacement is always zero and is not stored.
func packBImm(imm int32) uint32 {
	v := EncodeSigned(imm, ImmWidthB)
	var word uint32
	word |= ((v >> 12) & 0x1) << 31 // imm[12]
	word |= ((v >> 5) & 0x3F) << 25 // imm[10:5]
	word |= ((v >> 1) & 0xF) << 8   // imm[4:1]
	word |= ((v >> 11) & 0x1) << 7  // imm[11]
	return word
}

// unpackBImm gathers the branch displacement back out of a word,
// restoring the implicit zero bit 0.
func unpackBImm(word uint32) int32 {
	var v uint32
	v |= ((word >> 31) & 0x1) << 12 // imm[12]
	v |= ((word >> 25) & 0x3F) << 5 // imm[10:5]
	v |= ((word >> 8) & 0xF) << 1   // imm[4:1]
	v |= ((word >> 7) & 0x1) << 11  // imm[11]
	return DecodeSigned(v, ImmWidthB)
}

// packJImm scatters a 21-bit jump byte displacement into its word
// positions. Bit 0 of the displacement is always zero and is not stored.
func packJImm(imm int32) uint32 {
	v := EncodeSigned(imm, ImmWidthJ)
	var word uint32
	word |= ((v >> 20) & 0x1) << 31   // imm[20]
	word |= ((v >> 1) & 0x3FF) << 21  // imm[10:1]
	word |= ((v >> 11) & 0x1) << 20   // imm[11]
	word |= ((v >> 12) & 0xFF) << 12  // imm[19:12]
	return word
}

// unpackJImm gathers the jump displacement back out of a word,
// restoring the implicit zero bit 0.
func unpackJImm(word uint32) int32 {
	var v uint32
	v |= ((word >> 31) & 0x1) << 20  // imm[20]
	v |= ((word >> 21) & 0x3FF) << 1 // imm[10:1]
	v |= ((word >> 20) & 0x1) << 11  // imm[11]
	v |= ((word >> 12) & 0xFF) << 12 // imm[19:12]
	return DecodeSigned(v, ImmWidthJ)
}
