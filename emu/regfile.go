// Package emu provides functional RV32 machine emulation.
package emu

// RegFile represents the RV32 register file.
// It contains 32 general-purpose registers and the program counter.
// Register x0 is hardwired to zero.
type RegFile struct {
	// X holds general-purpose registers x0-x31.
	X [32]uint32

	// PC is the program counter, a byte offset into memory.
	PC uint32
}

// ReadReg reads a register value. Register 0 always returns 0.
func (r *RegFile) ReadReg(reg uint8) uint32 {
	if reg == 0 {
		return 0
	}
	return r.X[reg&0x1F]
}

// WriteReg writes a value to a register. Writes to register 0 are
// silently discarded. This is the sole place the zero-register
// invariant is enforced; values are masked to 32 bits by the type.
func (r *RegFile) WriteReg(reg uint8, value uint32) {
	if reg == 0 {
		return
	}
	r.X[reg&0x1F] = value
}

// ReadSigned reads a register as a two's-complement signed value.
func (r *RegFile) ReadSigned(reg uint8) int32 {
	return int32(r.ReadReg(reg))
}
