package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rv32sim/emu"
)

var _ = Describe("RegFile", func() {
	var regFile *emu.RegFile

	BeforeEach(func() {
		regFile = &emu.RegFile{}
	})

	It("should read back written values", func() {
		regFile.WriteReg(5, 0xDEADBEEF)
		Expect(regFile.ReadReg(5)).To(Equal(uint32(0xDEADBEEF)))
	})

	It("should discard writes to x0", func() {
		regFile.WriteReg(0, 42)
		Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
	})

	It("should read x0 as zero even if the array is dirtied", func() {
		regFile.X[0] = 42
		Expect(regFile.ReadReg(0)).To(Equal(uint32(0)))
	})

	It("should interpret values as two's complement when read signed", func() {
		regFile.WriteReg(7, 0xFFFFFFFF)
		Expect(regFile.ReadSigned(7)).To(Equal(int32(-1)))
	})
})
