//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"fmt"
	"strconv"
	"unicode"
)

// isLiteral tests if the value looks like an integer literal: a
// non-empty string of digits and '-' characters. The test is
// character-wise only; a value passing it can still fail to parse as
// an integer.
func isLiteral(val string) bool {
	if len(val) == 0 {
		return false
	}
	for _, r := range val {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

// foldConstant attempts to evaluate op over two literal operands. It
// returns the result literal and true when the operation could be
// evaluated at build time. Folding is purely textual: only operand
// text that is itself a literal is considered, never the value of a
// variable. Division by literal zero and operators outside + - * /
// are not foldable. Operand text that passes the literal character
// test but does not parse as an integer is a malformed-input error.
func foldConstant(op, arg1, arg2 string) (string, bool, error) {
	if !isLiteral(arg1) {
		return "", false, nil
	}
	if len(arg2) > 0 && !isLiteral(arg2) {
		return "", false, nil
	}
	val1, err := strconv.Atoi(arg1)
	if err != nil {
		return "", false, fmt.Errorf("%w: invalid literal '%s'",
			ErrMalformed, arg1)
	}
	var val2 int
	if len(arg2) > 0 {
		val2, err = strconv.Atoi(arg2)
		if err != nil {
			return "", false, fmt.Errorf("%w: invalid literal '%s'",
				ErrMalformed, arg2)
		}
	}

	var result int
	switch op {
	case "+":
		result = val1 + val2
	case "-":
		result = val1 - val2
	case "*":
		result = val1 * val2
	case "/":
		if val2 == 0 {
			return "", false, nil
		}
		result = val1 / val2
	default:
		return "", false, nil
	}
	return strconv.Itoa(result), true, nil
}
