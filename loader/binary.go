// Package loader reads assembled machine-word files for the simulator.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/rv32sim/translate"
)

var f = translate.From

// ErrBadWord is returned for a line that is not exactly 32 characters
// of 0/1.
var ErrBadWord = errors.New(f("not a 32-bit binary word"))

// Parse reads one machine word per line. Blank lines are skipped; any
// other line must be exactly 32 binary digits, most significant bit
// first. Errors carry the offending line number.
func Parse(r io.Reader) ([]uint32, error) {
	scanner := bufio.NewScanner(r)

	var words []uint32
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(line) != 32 {
			return nil, fmt.Errorf("%w at line %d", ErrBadWord, lineNo)
		}
		v, err := strconv.ParseUint(line, 2, 32)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d", ErrBadWord, lineNo)
		}
		words = append(words, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load parses a machine-word file from disk.
func Load(path string) ([]uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
