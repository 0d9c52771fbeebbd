//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package quad

import (
	"bufio"
	"io"
	"strings"
)

// Parse reads quadruples from in, one per line. A quadruple line is
// `(op, arg1, arg2, result)`; fields are trimmed of surrounding
// whitespace and missing trailing fields default to empty. Lines
// without both `(` and `)`, and lines starting with `#`, are skipped.
// The source name is used in diagnostics only.
func Parse(source string, in io.Reader) ([]Quadruple, error) {
	var quads []Quadruple

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		start := strings.IndexByte(line, '(')
		end := strings.IndexByte(line, ')')
		if start < 0 || end < 0 || end < start {
			continue
		}
		parts := strings.Split(line[start+1:end], ",")
		for len(parts) < 4 {
			parts = append(parts, "")
		}
		quads = append(quads, Quadruple{
			Op:     strings.TrimSpace(parts[0]),
			Arg1:   strings.TrimSpace(parts[1]),
			Arg2:   strings.TrimSpace(parts[2]),
			Result: strings.TrimSpace(parts[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return quads, nil
}

// ParseString parses quadruples from data.
func ParseString(data string) ([]Quadruple, error) {
	return Parse("{data}", strings.NewReader(data))
}
