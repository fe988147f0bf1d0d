package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A two pass assembler for the basic computer. The first pass resolves every
// label to its location counter value, the second pass encodes every
// instruction and directive into a 16 bit word keyed by its 12 bit binary
// address.

// Assembler holds the loaded instruction tables and the tokenized source.
// Symbol table and binary image are created fresh inside every Assemble call
// and handed to the caller, so one Assembler can run several programs in a
// row without state leaking between runs. Concurrent runs need one Assembler
// each, the instruction set may be shared between them.
type Assembler struct {
	tables  *InstructionSet
	asmfile string
	asm     [][]string
}

// NewAssembler builds an Assembler from up to four paths, all optional. An
// empty asmpath defers source loading to ReadCode or Assemble, an empty table
// path leaves that instruction class empty so its lookups always miss.
func NewAssembler(asmpath, mripath, rripath, ioipath string) (*Assembler, error) {
	tables, err := LoadInstructionSet(mripath, rripath, ioipath)
	if err != nil {
		return nil, err
	}
	return NewAssemblerWithSet(asmpath, tables)
}

// NewAssemblerWithSet builds an Assembler on top of an already loaded
// instruction set. The set is only read, several assemblers may share it.
func NewAssemblerWithSet(asmpath string, tables *InstructionSet) (*Assembler, error) {
	asm := &Assembler{tables: tables}
	if asmpath != "" {
		if err := asm.ReadCode(asmpath); err != nil {
			return nil, err
		}
	}
	return asm, nil
}

// ReadCode loads and tokenizes the assembly source at path, replacing any
// previously loaded source. The path must carry one of the accepted assembly
// suffixes, checked before any file IO.
func (asm *Assembler) ReadCode(path string) error {
	if err := checkSourcePath(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	lines, err := tokenizeSource(f)
	if err != nil {
		return err
	}
	asm.asmfile = filepath.Base(path)
	asm.asm = lines
	return nil
}

// SourceName returns the base name of the loaded source file, or an empty
// string when nothing is loaded yet.
func (asm *Assembler) SourceName() string {
	return asm.asmfile
}

// Assemble runs both passes over the loaded source and returns the binary
// image. path is consulted only when no source was loaded before, but a
// non-empty path is validated either way. On any failure no partial image is
// returned.
func (asm *Assembler) Assemble(path string) (BinaryImage, error) {
	if len(asm.asm) == 0 && path == "" {
		return nil, errors.New("no assembly file provided")
	}
	if path != "" {
		if err := checkSourcePath(path); err != nil {
			return nil, err
		}
	}
	if len(asm.asm) == 0 {
		if err := asm.ReadCode(path); err != nil {
			return nil, err
		}
	}
	stripComments(asm.asm)
	symbols, err := firstPass(asm.asm)
	if err != nil {
		return nil, fmt.Errorf("first pass on %s: %v", asm.asmfile, err)
	}
	image, err := secondPass(asm.asm, symbols, asm.tables)
	if err != nil {
		return nil, fmt.Errorf("second pass on %s: %v", asm.asmfile, err)
	}
	return image, nil
}

// checkSourcePath rejects paths without one of the two accepted assembly
// suffixes.
func checkSourcePath(path string) error {
	if strings.HasSuffix(path, ".asm") || strings.HasSuffix(path, ".S") {
		return nil
	}
	return fmt.Errorf("file %s does not end with .asm or .S", path)
}
