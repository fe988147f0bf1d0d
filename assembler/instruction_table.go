package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// The basic computer splits its instruction set into three classes, each
// loaded from a plain text file holding one "mnemonic pattern" pair per line.
// Memory-reference patterns are the 3 opcode bits, register-reference and
// input-output patterns are complete 16 bit words.

type InstructionTable map[string]string

// InstructionSet bundles the three class tables. It is immutable once loaded,
// any number of assemblers may share one.
type InstructionSet struct {
	MRI InstructionTable
	RRI InstructionTable
	IOI InstructionTable
}

// LoadInstructionTable loads one class table from path. Mnemonics are
// lower-cased on the way in, patterns are stored verbatim. An empty path
// yields an empty table, lookups on that class then always miss.
func LoadInstructionTable(path string) (InstructionTable, error) {
	table := InstructionTable{}
	if path == "" {
		return table, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed instruction table %s at line %d: want a mnemonic and a bit pattern, got %d fields", path, lineno, len(fields))
		}
		table[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// LoadInstructionSet loads the three class tables. Any failure aborts the
// whole load.
func LoadInstructionSet(mripath, rripath, ioipath string) (*InstructionSet, error) {
	mri, err := LoadInstructionTable(mripath)
	if err != nil {
		return nil, err
	}
	rri, err := LoadInstructionTable(rripath)
	if err != nil {
		return nil, err
	}
	ioi, err := LoadInstructionTable(ioipath)
	if err != nil {
		return nil, err
	}
	return &InstructionSet{MRI: mri, RRI: rri, IOI: ioi}, nil
}
