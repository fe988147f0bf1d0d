package main

import (
	"bufio"
	"io"
	"strings"
)

// The tokenizer turns raw assembly text into one token slice per source line.
// Tokens are lower-cased and split on whitespace, nothing is validated here.

// labelSuffix marks a token as a symbolic address declaration. The suffix
// stays part of the token, the symbol table keys include it.
const labelSuffix = ","

// tokenizeSource reads rd line by line and returns the token slices. Empty
// lines keep an empty slice so both passes see the same line sequence as the
// source file.
func tokenizeSource(rd io.Reader) ([][]string, error) {
	reader := bufio.NewReader(rd)
	var lines [][]string
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) > 0 {
			lines = append(lines, strings.Fields(strings.ToLower(string(line))))
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// stripComments removes comments in place. The first token of a line starting
// with '/' discards itself and every token after it. Running it again on
// already stripped lines changes nothing.
func stripComments(lines [][]string) {
	for i, line := range lines {
		for j, token := range line {
			if strings.HasPrefix(token, "/") {
				lines[i] = line[:j]
				break
			}
		}
	}
}

// isLabel reports whether token declares a label.
func isLabel(token string) bool {
	return strings.HasSuffix(token, labelSuffix)
}
