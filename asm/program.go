package asm

import (
	"fmt"
	"io"
)

// Program is the output of an assembly run: the machine words in source
// order plus any non-fatal warnings.
type Program struct {
	Words    []uint32
	Warnings []string
}

// WriteTo writes the assembled binary format: one line per instruction,
// each exactly 32 characters of 0/1, most significant bit first.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, word := range p.Words {
		written, err := fmt.Fprintf(w, "%032b\n", word)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
