// Package asm implements the two-pass RV32 assembler.
//
// Pass 1 assigns every label the byte PC of the instruction that follows
// it. Pass 2 resolves operands against the label table and the shared
// instruction table in the insts package, and emits one 32-bit word per
// instruction line. Any malformed instruction aborts the whole run.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/rv32sim/insts"
)

// Assembler translates assembly text into machine words.
type Assembler struct {
	encoder *insts.Encoder
	labels  map[string]uint32
}

// NewAssembler creates a new assembler.
func NewAssembler() *Assembler {
	return &Assembler{
		encoder: insts.NewEncoder(),
	}
}

// sourceLine is one significant line of input: comment-stripped, trimmed,
// and tagged with its 1-based position in the original file.
type sourceLine struct {
	no   int
	text string
}

func (l sourceLine) isLabel() bool {
	return strings.HasSuffix(l.text, ":")
}

// Assemble runs both passes over the input and returns the assembled
// program. The returned error, if any, unwraps to one of this package's
// sentinel errors and carries the offending line.
func (a *Assembler) Assemble(r io.Reader) (*Program, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	if err := a.collectLabels(lines); err != nil {
		return nil, err
	}

	prog := &Program{Warnings: checkHalt(lines)}

	pc := uint32(0)
	for _, line := range lines {
		if line.isLabel() {
			continue
		}
		word, err := a.encodeLine(line, pc)
		if err != nil {
			return nil, ErrSyntax{LineNo: line.no, Line: line.text, Err: err}
		}
		prog.Words = append(prog.Words, word)
		pc += 4
	}

	return prog, nil
}

// readLines strips comments and blank lines, keeping original line numbers.
func readLines(r io.Reader) ([]sourceLine, error) {
	scanner := bufio.NewScanner(r)

	var lines []sourceLine
	no := 0
	for scanner.Scan() {
		no++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, sourceLine{no: no, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// collectLabels is pass 1: walk the lines once, assigning each label the
// current byte PC. Label lines do not advance the PC.
func (a *Assembler) collectLabels(lines []sourceLine) error {
	a.labels = make(map[string]uint32)

	pc := uint32(0)
	for _, line := range lines {
		if !line.isLabel() {
			pc += 4
			continue
		}
		name := strings.TrimSuffix(line.text, ":")
		if _, ok := a.labels[name]; ok {
			return ErrSyntax{
				LineNo: line.no,
				Line:   line.text,
				Err:    fmt.Errorf("%w: '%s'", ErrDuplicateLabel, name),
			}
		}
		a.labels[name] = pc
	}
	return nil
}

// checkHalt warns when the program does not end with the canonical halt,
// a beq comparing x0 against x0 with a zero displacement. The check is
// best effort and never fails the assembly.
func checkHalt(lines []sourceLine) []string {
	warn := []string{f("no halt instruction (e.g. 'beq zero, zero, 0') at end")}

	if len(lines) == 0 {
		return warn
	}
	last := lines[len(lines)-1]
	if last.isLabel() {
		return warn
	}

	parts := tokenize(last.text)
	if len(parts) != 4 || parts[0] != "beq" || parts[3] != "0" {
		return warn
	}
	rs1, ok1 := insts.RegisterIndex(parts[1])
	rs2, ok2 := insts.RegisterIndex(parts[2])
	if !ok1 || !ok2 || rs1 != 0 || rs2 != 0 {
		return warn
	}
	return nil
}

// tokenize splits an instruction line into mnemonic and operand tokens.
// Commas separate operands; parentheses mark the imm(reg) memory-operand
// form and are stripped before splitting.
func tokenize(text string) []string {
	r := strings.NewReplacer(",", " ", "(", " ", ")", "")
	return strings.Fields(r.Replace(text))
}

// encodeLine is pass 2 for a single instruction: validate operand shape,
// resolve registers and the immediate, and pack the word.
func (a *Assembler) encodeLine(line sourceLine, pc uint32) (uint32, error) {
	parts := tokenize(line.text)
	if len(parts) == 0 {
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownMnemonic, line.text)
	}

	desc, ok := insts.Lookup(parts[0])
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownMnemonic, parts[0])
	}

	inst := &insts.Instruction{Op: desc.Op, Format: desc.Format}

	var err error
	switch desc.Format {
	case insts.FormatR:
		// mnemonic rd, rs1, rs2
		if len(parts) != 4 {
			return 0, fmt.Errorf("%w: %s expects rd, rs1, rs2", ErrOperandCount, parts[0])
		}
		if inst.Rd, err = resolveRegister(parts[1]); err != nil {
			return 0, err
		}
		if inst.Rs1, err = resolveRegister(parts[2]); err != nil {
			return 0, err
		}
		if inst.Rs2, err = resolveRegister(parts[3]); err != nil {
			return 0, err
		}
	case insts.FormatI:
		// addi/jalr: rd, rs1, imm; lw: rd, imm(rs1)
		if len(parts) != 4 {
			return 0, fmt.Errorf("%w: %s expects rd, rs1, and immediate", ErrOperandCount, parts[0])
		}
		regTok, immTok := parts[2], parts[3]
		if desc.Op == insts.OpLW {
			regTok, immTok = parts[3], parts[2]
		}
		if inst.Rd, err = resolveRegister(parts[1]); err != nil {
			return 0, err
		}
		if inst.Rs1, err = resolveRegister(regTok); err != nil {
			return 0, err
		}
		if inst.Imm, err = a.resolveImmediate(immTok, desc, pc); err != nil {
			return 0, err
		}
	case insts.FormatS:
		// sw rs2, imm(rs1)
		if len(parts) != 4 {
			return 0, fmt.Errorf("%w: %s expects rs2, imm(rs1)", ErrOperandCount, parts[0])
		}
		if inst.Rs2, err = resolveRegister(parts[1]); err != nil {
			return 0, err
		}
		if inst.Rs1, err = resolveRegister(parts[3]); err != nil {
			return 0, err
		}
		if inst.Imm, err = a.resolveImmediate(parts[2], desc, pc); err != nil {
			return 0, err
		}
	case insts.FormatB:
		// mnemonic rs1, rs2, target
		if len(parts) != 4 {
			return 0, fmt.Errorf("%w: %s expects rs1, rs2, and offset", ErrOperandCount, parts[0])
		}
		if inst.Rs1, err = resolveRegister(parts[1]); err != nil {
			return 0, err
		}
		if inst.Rs2, err = resolveRegister(parts[2]); err != nil {
			return 0, err
		}
		if inst.Imm, err = a.resolveImmediate(parts[3], desc, pc); err != nil {
			return 0, err
		}
	case insts.FormatJ:
		// jal rd, target
		if len(parts) != 3 {
			return 0, fmt.Errorf("%w: %s expects rd and offset", ErrOperandCount, parts[0])
		}
		if inst.Rd, err = resolveRegister(parts[1]); err != nil {
			return 0, err
		}
		if inst.Imm, err = a.resolveImmediate(parts[2], desc, pc); err != nil {
			return 0, err
		}
	}

	return a.encoder.Encode(inst, desc)
}

func resolveRegister(tok string) (uint8, error) {
	idx, ok := insts.RegisterIndex(tok)
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidRegister, tok)
	}
	return idx, nil
}

// resolveImmediate materializes an operand token as a signed integer.
// A label resolves to its byte displacement from the current PC for
// branches and jumps, and to its raw byte address otherwise. Any other
// token must be a base-10 integer literal. The result is range-checked
// against the format's immediate width.
func (a *Assembler) resolveImmediate(tok string, desc insts.InstrDesc, pc uint32) (int32, error) {
	var v int64
	if target, ok := a.labels[tok]; ok {
		if desc.PCRelative() {
			v = int64(target) - int64(pc)
		} else {
			v = int64(target)
		}
	} else {
		parsed, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s'", ErrInvalidImmediate, tok)
		}
		v = parsed
	}

	width := desc.ImmWidth()
	if !insts.FitsSigned(v, width) {
		return 0, fmt.Errorf("%w: %d does not fit in %d bits", ErrImmediateRange, v, width)
	}
	return int32(v), nil
}
