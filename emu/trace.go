package emu

import (
	"fmt"
	"io"
	"strings"
)

// FormatTraceLine renders one post-instruction trace line: the cycle's PC
// as 8 lowercase hex digits followed by all 32 registers in index order,
// each as a 32-bit binary value.
func FormatTraceLine(pc uint32, r *RegFile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08x", pc)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&sb, " x%d:0b%032b", i, r.ReadReg(uint8(i)))
	}
	return sb.String()
}

// WriteMemoryDump writes the trailing memory dump: a blank line, the
// literal "Memory:" header, then one row per word with addresses starting
// at DumpBase and stepping by 4.
func WriteMemoryDump(w io.Writer, m *Memory) error {
	if _, err := fmt.Fprint(w, "\nMemory:\n"); err != nil {
		return err
	}
	for i := 0; i < m.WordCount(); i++ {
		addr := uint32(DumpBase) + uint32(i)*4
		if _, err := fmt.Fprintf(w, "0x%08X:0b%032b\n", addr, m.Word(i)); err != nil {
			return err
		}
	}
	return nil
}
