package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("R-type", func() {
		// add a0, a1, a2 -> 0x00C58533
		It("should decode add a0, a1, a2", func() {
			inst := decoder.Decode(0x00C58533)

			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rd).To(Equal(uint8(10)))
			Expect(inst.Rs1).To(Equal(uint8(11)))
			Expect(inst.Rs2).To(Equal(uint8(12)))
		})

		// sub a0, a1, a2 -> 0x40C58533 (funct7 = 0100000)
		It("should disambiguate sub by funct7", func() {
			inst := decoder.Decode(0x40C58533)

			Expect(inst.Op).To(Equal(insts.OpSUB))
			Expect(inst.Format).To(Equal(insts.FormatR))
		})

		It("should decode slt, srl, or, and by funct3", func() {
			Expect(decoder.Decode(0x00C5A533).Op).To(Equal(insts.OpSLT))
			Expect(decoder.Decode(0x00C5D533).Op).To(Equal(insts.OpSRL))
			Expect(decoder.Decode(0x00C5E533).Op).To(Equal(insts.OpOR))
			Expect(decoder.Decode(0x00C5F533).Op).To(Equal(insts.OpAND))
		})

		// funct3 = 001 is not in the table for the arithmetic opcode
		It("should mark an unknown funct combination", func() {
			inst := decoder.Decode(0x00C59533)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatR))
		})
	})

	Describe("I-type", func() {
		// addi a0, zero, 5 -> 0x00500513
		It("should decode addi a0, zero, 5", func() {
			inst := decoder.Decode(0x00500513)

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Rd).To(Equal(uint8(10)))
			Expect(inst.Rs1).To(Equal(uint8(0)))
			Expect(inst.Imm).To(Equal(int32(5)))
		})

		It("should sign-extend a negative immediate", func() {
			// addi a0, a0, -1
			word := encode("addi", insts.Instruction{Rd: 10, Rs1: 10, Imm: -1})
			inst := decoder.Decode(word)

			Expect(inst.Imm).To(Equal(int32(-1)))
		})

		// lw a1, 8(sp) -> 0x00812583
		It("should decode lw a1, 8(sp)", func() {
			inst := decoder.Decode(0x00812583)

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Rd).To(Equal(uint8(11)))
			Expect(inst.Rs1).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int32(8)))
		})

		// jalr ra, t0, 0 -> 0x000280E7
		It("should decode jalr ra, t0, 0", func() {
			inst := decoder.Decode(0x000280E7)

			Expect(inst.Op).To(Equal(insts.OpJALR))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rs1).To(Equal(uint8(5)))
			Expect(inst.Imm).To(Equal(int32(0)))
		})
	})

	Describe("S-type", func() {
		// sw a0, 4(sp) -> 0x00A12223
		It("should reassemble the split immediate", func() {
			inst := decoder.Decode(0x00A12223)

			Expect(inst.Op).To(Equal(insts.OpSW))
			Expect(inst.Format).To(Equal(insts.FormatS))
			Expect(inst.Rs1).To(Equal(uint8(2)))
			Expect(inst.Rs2).To(Equal(uint8(10)))
			Expect(inst.Imm).To(Equal(int32(4)))
		})

		// sw a0, -4(sp) -> 0xFEA12E23
		It("should sign-extend a negative store offset", func() {
			inst := decoder.Decode(0xFEA12E23)

			Expect(inst.Imm).To(Equal(int32(-4)))
		})
	})

	Describe("B-type", func() {
		// beq x1, x2, -4 -> 0xFE208EE3
		It("should restore the implicit zero bit of the displacement", func() {
			inst := decoder.Decode(0xFE208EE3)

			Expect(inst.Op).To(Equal(insts.OpBEQ))
			Expect(inst.Format).To(Equal(insts.FormatB))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Rs2).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int32(-4)))
		})

		It("should decode bne and blt by funct3", func() {
			Expect(decoder.Decode(0x00B51463).Op).To(Equal(insts.OpBNE))
			Expect(decoder.Decode(0x00B54463).Op).To(Equal(insts.OpBLT))
		})

		// funct3 = 011 is not a branch; format must still say FormatB
		It("should keep FormatB for an unknown branch funct3", func() {
			inst := decoder.Decode(0x00B53463)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatB))
		})

		It("should round-trip every even displacement in range", func() {
			for imm := int32(-4096); imm <= 4094; imm += 2 {
				word := encode("beq", insts.Instruction{Rs1: 1, Rs2: 2, Imm: imm})
				decoded := decoder.Decode(word)
				Expect(decoded.Imm).To(Equal(imm), "displacement %d", imm)
			}
		})
	})

	Describe("J-type", func() {
		// jal zero, -4 -> 0xFFDFF06F
		It("should decode jal zero, -4", func() {
			inst := decoder.Decode(0xFFDFF06F)

			Expect(inst.Op).To(Equal(insts.OpJAL))
			Expect(inst.Format).To(Equal(insts.FormatJ))
			Expect(inst.Rd).To(Equal(uint8(0)))
			Expect(inst.Imm).To(Equal(int32(-4)))
		})

		It("should round-trip boundary displacements", func() {
			for _, imm := range []int32{-1048576, -4, -2, 0, 2, 4, 1048574} {
				word := encode("jal", insts.Instruction{Rd: 1, Imm: imm})
				decoded := decoder.Decode(word)
				Expect(decoded.Imm).To(Equal(imm), "displacement %d", imm)
			}
		})
	})

	Describe("System", func() {
		It("should treat opcode 1110011 as a halt request", func() {
			inst := decoder.Decode(0b1110011)

			Expect(inst.Op).To(Equal(insts.OpECALL))
			Expect(inst.Format).To(Equal(insts.FormatSystem))
		})

		It("should ignore the remaining fields", func() {
			inst := decoder.Decode(0xFFFFF0F3&0xFFFFFF80 | 0b1110011)

			Expect(inst.Op).To(Equal(insts.OpECALL))
		})
	})

	Describe("Unknown opcodes", func() {
		It("should mark an unrecognized opcode", func() {
			inst := decoder.Decode(0x00000007)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatUnknown))
		})

		It("should mark the all-zero word", func() {
			inst := decoder.Decode(0)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Format).To(Equal(insts.FormatUnknown))
		})
	})
})
