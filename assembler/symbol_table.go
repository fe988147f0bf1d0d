package main

import (
	"fmt"
	"strconv"
)

// SymbolTable maps a label token, comma included, to the location counter
// value at its declaration. It is built once by the first pass and read-only
// afterwards.
type SymbolTable map[string]int

// firstPass scans the comment-stripped lines and records the address of every
// label. A labeled line occupies exactly one word, so the label's address is
// the address of the instruction it decorates. org resets the location
// counter, end stops the scan and anything else advances it by one word.
// Lines without tokens are skipped and leave the counter alone.
func firstPass(lines [][]string) (SymbolTable, error) {
	symbols := SymbolTable{}
	lc := 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		code := line[0]
		switch {
		case isLabel(code):
			if _, exist := symbols[code]; exist {
				return nil, fmt.Errorf("found duplicate label %s", code)
			}
			symbols[code] = lc
			lc++
		case code == "org":
			origin, err := strconv.ParseInt(line[len(line)-1], 16, 64)
			if err != nil {
				return nil, fmt.Errorf("org needs a hexadecimal address: %v", err)
			}
			lc = int(origin)
		case code == "end":
			return symbols, nil
		default:
			lc++
		}
	}
	return symbols, nil
}
