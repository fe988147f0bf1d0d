package main

import (
	"fmt"
	"strconv"

	"github.com/omar-bahaa/basiccomputerassembler/util"
)

// The second pass encodes every word of the program. A memory-reference word
// is I + opcode + address (1 + 3 + 12 bits), register-reference and
// input-output words come verbatim from their tables, dec and hex emit
// converted literals.

const (
	addressBits = 12
	wordBits    = 16

	// indirectMarker as the final token of a memory-reference line selects
	// indirect addressing. The tokenizer lower-cases everything, so the
	// marker is matched in lower case.
	indirectMarker = "i"
)

// BinaryImage maps the 12 bit binary address of every assembled word to its
// 16 bit binary content. It is the assembler's final output.
type BinaryImage map[string]string

// secondPass re-scans the comment-stripped lines and builds the binary image,
// resolving operands through the symbol table from the first pass. The
// location counter walk mirrors firstPass exactly: empty lines are skipped,
// a label-only line keeps its word slot but encodes nothing, unknown
// mnemonics keep their slot silently.
func secondPass(lines [][]string, symbols SymbolTable, tables *InstructionSet) (BinaryImage, error) {
	image := BinaryImage{}
	lc := 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		effectiveIndex := 0
		if isLabel(line[0]) {
			effectiveIndex = 1
		}
		if effectiveIndex >= len(line) {
			lc++
			continue
		}
		address := util.IntToBinary(lc, addressBits)
		instr := line[effectiveIndex]
		last := line[len(line)-1]
		switch instr {
		case "org":
			origin, err := strconv.ParseInt(last, 16, 64)
			if err != nil {
				return nil, fmt.Errorf("org needs a hexadecimal address: %v", err)
			}
			lc = int(origin)
		case "end":
			return image, nil
		case "dec":
			word, err := util.FormatBinary(last, util.Dec, wordBits)
			if err != nil {
				return nil, err
			}
			image[address] = word
			lc++
		case "hex":
			word, err := util.FormatBinary(last, util.Hex, wordBits)
			if err != nil {
				return nil, err
			}
			image[address] = word
			lc++
		default:
			if opcode, exist := tables.MRI[instr]; exist {
				word, err := encodeMemoryReference(line, opcode, symbols)
				if err != nil {
					return nil, err
				}
				image[address] = word
			} else if word, exist := tables.RRI[instr]; exist {
				image[address] = word
			} else if word, exist := tables.IOI[instr]; exist {
				image[address] = word
			}
			lc++
		}
	}
	return image, nil
}

// encodeMemoryReference encodes one memory-reference line. The operand is the
// last token, or the one before it when the line ends with the indirect
// marker. An operand naming a label resolves through the symbol table,
// anything else must be a literal hexadecimal address.
func encodeMemoryReference(line []string, opcode string, symbols SymbolTable) (string, error) {
	indirect := "0"
	operand := line[len(line)-1]
	if operand == indirectMarker && len(line) > 1 {
		indirect = "1"
		operand = line[len(line)-2]
	}
	if location, exist := symbols[operand+labelSuffix]; exist {
		return indirect + opcode + util.IntToBinary(location, addressBits), nil
	}
	field, err := util.FormatBinary(operand, util.Hex, addressBits)
	if err != nil {
		return "", fmt.Errorf("cannot resolve operand %s: %v", operand, err)
	}
	return indirect + opcode + field, nil
}
