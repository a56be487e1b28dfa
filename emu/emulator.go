package emu

import (
	"fmt"
	"io"

	"github.com/sarchlab/rv32sim/insts"
)

// DefaultMaxSteps is the hard execution ceiling applied when no other
// limit is configured.
const DefaultMaxSteps = 10000

// StepResult represents the result of executing a single cycle.
type StepResult struct {
	// Halted is true if the instruction requested a clean halt.
	Halted bool

	// Err is set if the cycle faulted.
	Err error
}

// StopReason says why a Run ended.
type StopReason int

// Stop reasons. Only StopHalt is a successful outcome; the two guard
// reasons are soft stops distinguishable from a true fault.
const (
	StopHalt StopReason = iota
	StopFault
	StopSelfLoop
	StopStepLimit
	StopPCOutOfRange
)

func (r StopReason) String() string {
	switch r {
	case StopHalt:
		return "halt"
	case StopFault:
		return "fault"
	case StopSelfLoop:
		return "self-loop"
	case StopStepLimit:
		return "step-limit"
	case StopPCOutOfRange:
		return "pc-out-of-range"
	default:
		return fmt.Sprintf("stop-reason-%d", int(r))
	}
}

// RunResult summarizes a completed simulation run.
type RunResult struct {
	Reason StopReason
	Steps  uint64
	Err    error
}

// Emulator executes RV32 machine words sequentially against an
// exclusively owned register file and memory.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	// Execution units
	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	trace     io.Writer
	maxSteps  uint64
	stepCount uint64
	lastPC    int64
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithTrace sets the writer that receives one trace line per executed
// cycle and the final memory dump. A nil writer disables tracing.
func WithTrace(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.trace = w
	}
}

// WithMaxSteps sets the hard step ceiling. A value of 0 means no limit.
func WithMaxSteps(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxSteps = max
	}
}

// WithMemoryWords sets the memory size in 32-bit words.
func WithMemoryWords(wordCount int) EmulatorOption {
	return func(e *Emulator) {
		e.memory = NewMemory(wordCount)
	}
}

// NewEmulator creates a new RV32 emulator with zeroed registers, a zero
// PC, and an empty memory of DefaultMemoryWords words.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile:  &RegFile{},
		memory:   NewMemory(DefaultMemoryWords),
		decoder:  insts.NewDecoder(),
		maxSteps: DefaultMaxSteps,
		lastPC:   -1,
	}

	// Apply options first (may replace the memory)
	for _, opt := range opts {
		opt(e)
	}

	// Create execution units
	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.memory)
	e.branchUnit = NewBranchUnit(e.regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// StepCount returns the number of cycles executed.
func (e *Emulator) StepCount() uint64 {
	return e.stepCount
}

// LoadProgram copies the program words into memory starting at word 0 and
// resets the PC. It fails before simulation starts if the program does
// not fit.
func (e *Emulator) LoadProgram(words []uint32) error {
	if len(words) > e.memory.WordCount() {
		return fmt.Errorf("%w: %d words, capacity %d",
			ErrProgramTooLarge, len(words), e.memory.WordCount())
	}
	for i, w := range words {
		e.memory.SetWord(i, w)
	}
	e.regFile.PC = 0
	e.lastPC = -1
	e.stepCount = 0
	return nil
}

// Step executes a single cycle: fetch at PC, decode, execute. A trace
// line carrying the cycle's PC and the post-instruction register state is
// written for every executed cycle, including the halting or faulting one.
func (e *Emulator) Step() StepResult {
	// x0 reads as zero even if something scribbled on the array directly.
	e.regFile.X[0] = 0

	pc := e.regFile.PC
	if pc >= e.memory.ByteSize() {
		return StepResult{Err: fmt.Errorf("%w: PC=0x%08x", ErrMemoryAccess, pc)}
	}

	word := e.memory.Word(int(pc / 4))
	inst := e.decoder.Decode(word)

	nextPC, halted, err := e.execute(inst, pc)

	e.stepCount++
	e.lastPC = int64(pc)

	if e.trace != nil {
		fmt.Fprintln(e.trace, FormatTraceLine(pc, e.regFile))
	}

	if err != nil {
		return StepResult{Err: err}
	}
	if halted {
		return StepResult{Halted: true}
	}

	e.regFile.PC = nextPC
	return StepResult{}
}

// Run executes cycles until a halt, a fault, or a guard fires, then
// writes the memory dump. The partial trace and the full dump are
// produced on every exit path.
func (e *Emulator) Run() RunResult {
	result := e.loop()
	if e.trace != nil {
		_ = WriteMemoryDump(e.trace, e.memory)
	}
	return result
}

func (e *Emulator) loop() RunResult {
	for {
		pc := e.regFile.PC
		if pc >= e.memory.ByteSize() {
			return RunResult{
				Reason: StopPCOutOfRange,
				Steps:  e.stepCount,
				Err:    fmt.Errorf("%w: PC=0x%08x", ErrMemoryAccess, pc),
			}
		}
		if e.lastPC >= 0 && int64(pc) == e.lastPC {
			return RunResult{Reason: StopSelfLoop, Steps: e.stepCount}
		}
		if e.maxSteps > 0 && e.stepCount >= e.maxSteps {
			return RunResult{Reason: StopStepLimit, Steps: e.stepCount}
		}

		result := e.Step()
		if result.Halted {
			return RunResult{Reason: StopHalt, Steps: e.stepCount}
		}
		if result.Err != nil {
			return RunResult{Reason: StopFault, Steps: e.stepCount, Err: result.Err}
		}
	}
}

// execute dispatches a decoded instruction to its execution unit and
// returns the next PC, a halt request, or a fault.
func (e *Emulator) execute(inst *insts.Instruction, pc uint32) (uint32, bool, error) {
	switch inst.Format {
	case insts.FormatSystem:
		// ECALL/EBREAK halts regardless of the remaining fields.
		return pc, true, nil
	case insts.FormatR:
		if inst.Op == insts.OpUnknown {
			return pc, false, fmt.Errorf("%w at PC=0x%08x", ErrUnknownInstruction, pc)
		}
		if err := e.alu.Register(inst); err != nil {
			return pc, false, err
		}
		return pc + 4, false, nil
	case insts.FormatI:
		switch inst.Op {
		case insts.OpADDI:
			e.alu.AddImmediate(inst)
			return pc + 4, false, nil
		case insts.OpLW:
			if err := e.lsu.LW(inst); err != nil {
				return pc, false, err
			}
			return pc + 4, false, nil
		case insts.OpJALR:
			return e.branchUnit.JALR(inst, pc), false, nil
		default:
			return pc, false, fmt.Errorf("%w at PC=0x%08x", ErrUnknownInstruction, pc)
		}
	case insts.FormatS:
		if inst.Op != insts.OpSW {
			return pc, false, fmt.Errorf("%w at PC=0x%08x", ErrUnknownInstruction, pc)
		}
		if err := e.lsu.SW(inst); err != nil {
			return pc, false, err
		}
		return pc + 4, false, nil
	case insts.FormatB:
		return e.branchUnit.Branch(inst, pc)
	case insts.FormatJ:
		return e.branchUnit.JAL(inst, pc), false, nil
	default:
		return pc, false, fmt.Errorf("%w at PC=0x%08x", ErrUnknownInstruction, pc)
	}
}
