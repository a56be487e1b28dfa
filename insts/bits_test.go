package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/insts"
)

var _ = Describe("Signed Bit Codec", func() {
	It("should round-trip every in-range value for width 12", func() {
		for v := int32(-2048); v <= 2047; v++ {
			bits := insts.EncodeSigned(v, 12)
			Expect(bits >> 12).To(Equal(uint32(0)))
			Expect(insts.DecodeSigned(bits, 12)).To(Equal(v))
		}
	})

	It("should round-trip every in-range value for width 13", func() {
		for v := int32(-4096); v <= 4095; v++ {
			Expect(insts.DecodeSigned(insts.EncodeSigned(v, 13), 13)).To(Equal(v))
		}
	})

	It("should round-trip boundary values for width 21", func() {
		for _, v := range []int32{-1048576, -1048575, -4, -1, 0, 1, 4, 1048574, 1048575} {
			Expect(insts.DecodeSigned(insts.EncodeSigned(v, 21), 21)).To(Equal(v))
		}
	})

	It("should interpret a set sign bit as negative", func() {
		Expect(insts.DecodeSigned(0b111111111111, 12)).To(Equal(int32(-1)))
		Expect(insts.DecodeSigned(0b100000000000, 12)).To(Equal(int32(-2048)))
		Expect(insts.DecodeSigned(0b011111111111, 12)).To(Equal(int32(2047)))
	})

	It("should check signed ranges per width", func() {
		Expect(insts.FitsSigned(2047, 12)).To(BeTrue())
		Expect(insts.FitsSigned(2048, 12)).To(BeFalse())
		Expect(insts.FitsSigned(-2048, 12)).To(BeTrue())
		Expect(insts.FitsSigned(-2049, 12)).To(BeFalse())

		Expect(insts.FitsSigned(4095, 13)).To(BeTrue())
		Expect(insts.FitsSigned(4096, 13)).To(BeFalse())
		Expect(insts.FitsSigned(-4096, 13)).To(BeTrue())
		Expect(insts.FitsSigned(-4097, 13)).To(BeFalse())

		Expect(insts.FitsSigned(1048575, 21)).To(BeTrue())
		Expect(insts.FitsSigned(1048576, 21)).To(BeFalse())
		Expect(insts.FitsSigned(-1048576, 21)).To(BeTrue())
		Expect(insts.FitsSigned(-1048577, 21)).To(BeFalse())
	})
})
