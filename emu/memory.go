package emu

import "fmt"

// DefaultMemoryWords is the default memory size: 32 words (128 bytes).
const DefaultMemoryWords = 32

// DumpBase is the byte address printed for the first word in a memory dump.
const DumpBase = 0x00010000

// Memory is a fixed-length sequence of 32-bit words. Instructions address
// it in bytes; a byte address is truncated to its containing word.
type Memory struct {
	words []uint32
}

// NewMemory creates a memory of the given word count.
func NewMemory(wordCount int) *Memory {
	return &Memory{words: make([]uint32, wordCount)}
}

// WordCount returns the number of words in the memory.
func (m *Memory) WordCount() int {
	return len(m.words)
}

// ByteSize returns the memory size in bytes.
func (m *Memory) ByteSize() uint32 {
	return uint32(len(m.words)) * 4
}

// Load reads the word containing the byte address.
func (m *Memory) Load(addr uint32) (uint32, error) {
	if addr >= m.ByteSize() {
		return 0, fmt.Errorf("%w: 0x%08x", ErrMemoryAccess, addr)
	}
	return m.words[addr/4], nil
}

// Store writes the word containing the byte address.
func (m *Memory) Store(addr uint32, value uint32) error {
	if addr >= m.ByteSize() {
		return fmt.Errorf("%w: 0x%08x", ErrMemoryAccess, addr)
	}
	m.words[addr/4] = value
	return nil
}

// Word reads a word by word index, without bounds checking beyond the
// slice's own.
func (m *Memory) Word(i int) uint32 {
	return m.words[i]
}

// SetWord writes a word by word index.
func (m *Memory) SetWord(i int, value uint32) {
	m.words[i] = value
}
